package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTimeFormat           = "15:04:05.000"
	DefaultCallerSkipFrameCount = 3 // set to 3 because logger wrapped in logger.go

	NoColor   = true
	UseCaller = false // for developer, if you want to expose line of code of caller
)

//nolint:gochecknoglobals // process wide diagnostic log
var (
	logBuffer = &syncBuffer{}

	// DebugMode flag for determining debug mode
	DebugMode = false
)

// syncBuffer is written from bubbletea command goroutines, so every access takes the lock.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

func init() { //nolint:gochecknoinits // logger must be ready before any command runs
	zerolog.TimeFieldFormat = DefaultTimeFormat
	zerolog.CallerSkipFrameCount = DefaultCallerSkipFrameCount

	consoleWriter := zerolog.ConsoleWriter{
		Out:        logBuffer,
		NoColor:    NoColor,
		TimeFormat: DefaultTimeFormat,
	}

	lgr := zerolog.New(zerolog.MultiLevelWriter(consoleWriter))
	if UseCaller {
		lgr = lgr.With().Caller().Logger()
	}

	log.Logger = lgr
}

// PrintLogs prints the buffered diagnostic log to stderr when debug mode is on.
func PrintLogs() {
	FprintLogs(os.Stderr)
}

// FprintLogs writes the buffered diagnostic log to w when debug mode is on.
func FprintLogs(w io.Writer) {
	if !DebugMode {
		return
	}
	logs := logBuffer.String()
	if len(logs) > 0 {
		fmt.Fprintln(w, "\n----- Log -----")
		fmt.Fprintln(w, logs)
	}
}

// SetDebugMode enables printing of the buffered log on exit.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Logs returns everything logged so far.
func Logs() string {
	return logBuffer.String()
}

// ResetLogs drops the buffered log.
func ResetLogs() {
	logBuffer.Reset()
}
