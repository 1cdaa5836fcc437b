package telemetry

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const sentryFlushTimeout = 5 * time.Second

var (
	sentryInitialized bool
)

// SentryHook forwards log events to Sentry once SentryInit succeeded.
type SentryHook struct{}

// Run is called for every log event and implements the zerolog.Hook interface.
func (h SentryHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if !sentryInitialized || !slices.Contains(h.Levels(), level) {
		return
	}

	switch level { //nolint:exhaustive // filtered by Levels
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		sentry.CaptureException(errors.New(msg))
	default:
		sentry.CaptureMessage(msg)
	}
}

// Levels returns the log levels that this hook should be triggered for.
func (h SentryHook) Levels() []zerolog.Level {
	return []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel, zerolog.WarnLevel}
}

// SentryInit initialize sentry.
func SentryInit(sentryDsn string, env string, appVersion string) {
	if sentryDsn == "" {
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDsn,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		AttachStacktrace: true,
		Environment:      env,
		Release:          fmt.Sprintf("usermgr@%s", appVersion),
	})
	if err != nil {
		log.Err(err).Msg("Cannot initialize sentry")
		return
	}

	sentryInitialized = true
}

func SentryFlush() {
	if !sentryInitialized {
		return
	}

	err := recover()
	if err != nil {
		sentry.CurrentHub().Recover(err)
	}

	// Flush buffered events before the program terminates.
	sentry.Flush(sentryFlushTimeout)
	sentryInitialized = false
}
