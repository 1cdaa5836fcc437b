package telemetry

import (
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/posthog/posthog-go"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

const (
	RunningEvent  = "usermgr running"
	machineIDApp  = "usermgr"
	timestampFile = "last_seen"
)

var (
	posthogClient      posthog.Client
	posthogInitialized bool
	lastLoggedTime     time.Time
	stateDir           string
)

// PosthogInit enables event capture. dir holds the last-seen timestamp used to send
// RunningEvent at most once a day.
func PosthogInit(posthogAPIKey string, dir string) {
	if posthogAPIKey == "" {
		return
	}

	posthogClient = posthog.New(posthogAPIKey)
	posthogInitialized = true
	stateDir = dir

	lastTime, err := getLastLoggedTime()
	if err != nil {
		log.Err(err).Msg("Cannot get last logged time")
	}
	lastLoggedTime = lastTime

	if err := updateLastLoggedTime(time.Now()); err != nil {
		log.Err(err).Msg("Cannot update last logged time")
	}
}

// PosthogCaptureEvent enqueues event with the command name as context.
func PosthogCaptureEvent(context, event string) {
	if !posthogInitialized {
		return
	}
	if event == RunningEvent && isSameDay(lastLoggedTime, time.Now()) {
		return
	}

	machineID, err := machineid.ProtectedID(machineIDApp)
	if err != nil {
		log.Err(err).Msg("Cannot get machine id")
		return
	}

	err = posthogClient.Enqueue(posthog.Capture{
		DistinctId: machineID,
		Timestamp:  time.Now(),
		Event:      event,
		Properties: posthog.NewProperties().Set("context", context),
	})
	if err != nil {
		log.Err(err).Msg("Cannot capture event")
	}
}

func PosthogClose() {
	if !posthogInitialized {
		return
	}
	if err := posthogClient.Close(); err != nil {
		log.Err(err).Msg("Cannot close posthog client")
	}
	posthogInitialized = false
}

func getTimestampFilePath() (string, error) {
	if stateDir == "" {
		return "", eris.New("no telemetry state directory")
	}
	return filepath.Join(stateDir, timestampFile), nil
}

// getLastLoggedTime returns the zero time when no timestamp was written yet.
func getLastLoggedTime() (time.Time, error) {
	filePath, err := getTimestampFilePath()
	if err != nil {
		return time.Time{}, err
	}

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, eris.Wrap(err, "failed to read timestamp file")
	}

	timestamp, err := time.Parse(time.DateOnly, string(data))
	if err != nil {
		return time.Time{}, eris.Wrap(err, "failed to parse timestamp file")
	}
	return timestamp, nil
}

func updateLastLoggedTime(timestamp time.Time) error {
	filePath, err := getTimestampFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil { //nolint:mnd // dir permissions
		return eris.Wrap(err, "failed to create telemetry directory")
	}
	return eris.Wrap(os.WriteFile(filePath, []byte(timestamp.Format(time.DateOnly)), 0o600), //nolint:mnd // file permissions
		"failed to write timestamp file")
}

func isSameDay(time1, time2 time.Time) bool {
	y1, m1, d1 := time1.Date()
	y2, m2, d2 := time2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
