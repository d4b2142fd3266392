package diag

import (
	"errors"
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// Lexer errors
var ErrUnexpectedCharacter = errors.New("Unexpected character")
var ErrUnterminatedString = errors.New("Unterminated string")

// Reporter receives lexical errors. Reporting never stops a scan.
type Reporter interface {
	Report(line int, err error)
}

// Error is an error attributed to a source line
type Error struct {
	Err  error
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// State collects the errors reported while processing one source
type State struct {
	errors []*Error
	color  *color.Color
	log    *logrus.Entry
}

// NewState creates an empty error collector
func NewState(log *logrus.Entry) *State {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	c := color.New()
	c.Disable()
	return &State{color: c, log: log}
}

// EnableColor turns on coloured output for PrintErrors
func (s *State) EnableColor() {
	s.color.Enable()
}

// Report implements Reporter
func (s *State) Report(line int, err error) {
	s.errors = append(s.errors, &Error{Err: err, Line: line})
	s.log.WithField("line", line).WithError(err).Debug("error reported")
}

// Valid returns true if no error was reported
func (s *State) Valid() bool {
	return len(s.errors) == 0
}

// Errors returns reported errors in report order
func (s *State) Errors() []*Error {
	return s.errors
}

// PrintErrors prints all errors to w.
// Returns true if there was something to print.
func (s *State) PrintErrors(w io.Writer) bool {
	for _, e := range s.errors {
		fmt.Fprintf(w, "%s %s\n", s.color.Red(fmt.Sprintf("[line %d] Error:", e.Line)), e.Err)
	}
	return len(s.errors) > 0
}
