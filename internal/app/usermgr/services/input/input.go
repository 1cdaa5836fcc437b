package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/pkg/printer"
)

var _ ServiceInterface = (*Service)(nil)

// NewService creates a new input service with standard stdin/stdout.
func NewService() *Service {
	return &Service{
		Input:  nil, // Will use os.Stdin if nil
		Output: nil, // Will use the printer if nil
	}
}

// NewTestService creates a new input service for testing with custom input/output.
func NewTestService(input io.Reader, output io.Writer) *Service {
	return &Service{
		Input:  input,
		Output: output,
	}
}

// Prompt displays a prompt and returns user input.
func (s *Service) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if prompt != "" {
		s.printf("%s", prompt)
	}
	if defaultValue != "" {
		s.printf(" [%s]: ", defaultValue)
	} else {
		s.printf(": ")
	}

	input, err := s.readLine()
	if err != nil {
		return "", eris.Wrap(err, "failed to read input")
	}

	input = strings.TrimSpace(input)
	if input == "" && defaultValue != "" {
		// Display the default value as if they typed it in
		s.moveCursorUp(1)
		s.moveCursorRight(len(defaultValue) + 4 + len(prompt)) //nolint:mnd // " [" + "]: "
		s.println(defaultValue)
		return defaultValue, nil
	}
	return input, nil
}

// Confirm asks for y/n confirmation with default. Anything else is asked again.
func (s *Service) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	for {
		input, err := s.Prompt(ctx, prompt, defaultValue)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			s.println("Invalid input. Please enter 'y' or 'n'")
		}
	}
}

// Helper methods for I/O operations

func (s *Service) readLine() (string, error) {
	input := s.Input
	if input == nil {
		input = os.Stdin
	}

	// Read one byte at a time so nothing past the newline is consumed
	// before the next prompt.
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := input.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				return sb.String(), nil
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
	}
}

func (s *Service) printf(format string, args ...interface{}) {
	if s.Output == nil {
		printer.Infof(format, args...)
		return
	}
	fmt.Fprintf(s.Output, format, args...)
}

func (s *Service) println(text string) {
	if s.Output == nil {
		printer.Infoln(text)
		return
	}
	fmt.Fprintln(s.Output, text)
}

func (s *Service) moveCursorUp(lines int) {
	if s.Output == nil {
		printer.MoveCursorUp(lines)
	}
	// If using custom output, skip cursor movements
}

func (s *Service) moveCursorRight(chars int) {
	if s.Output == nil {
		printer.MoveCursorRight(chars)
	}
}
