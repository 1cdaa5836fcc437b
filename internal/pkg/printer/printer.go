//nolint:forbidigo // Printer is used for customer friendly output to terminal
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guumaster/logsymbols"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // read only, initialize objects once for performance.
var (
	successStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)

	out io.Writer = os.Stdout
)

// SetOutput redirects all printer output. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

func Successln(msg string) {
	fmt.Fprintln(out, successStyle.Render(string(logsymbols.Success)+" "+msg))
}

func Successf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	fmt.Fprint(out, successStyle.Render(string(logsymbols.Success)+" "+fmt.Sprintf(newFormat, args...)))
	NewLine(linesRemoved)
}

func Errorln(msg string) {
	fmt.Fprintln(out, errorStyle.Render(string(logsymbols.Error)+" "+msg))
}

func Errorf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	fmt.Fprint(out, errorStyle.Render(string(logsymbols.Error)+" "+fmt.Sprintf(newFormat, args...)))
	NewLine(linesRemoved)
}

func Info(msg string) {
	fmt.Fprint(out, msg)
}

func Infoln(msg string) {
	fmt.Fprintln(out, msg)
}

func Infof(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
}

func Headerln(msg string) {
	fmt.Fprintln(out, headerStyle.Render(msg))
}

func NewLine(numberOfLines int) {
	if numberOfLines <= 0 {
		return
	}
	fmt.Fprint(out, strings.Repeat("\n", numberOfLines))
}

func MoveCursorUp(numberOfLines int) {
	output := termenv.NewOutput(os.Stdout)
	output.CursorUp(numberOfLines)
}

func MoveCursorRight(numberOfCells int) {
	output := termenv.NewOutput(os.Stdout)
	output.CursorForward(numberOfCells)
}

// trimAndCountTrailingNewlines trims trailing newlines from a string and returns the count.
// Used for sylized output to ensure the cursor is reset properly.
func trimAndCountTrailingNewlines(s string) (string, int) {
	if s == "" {
		return "", 0
	}

	count := 0
	i := len(s)
	for i > 0 && s[i-1] == '\n' {
		i--
		count++
	}
	return s[:i], count
}
