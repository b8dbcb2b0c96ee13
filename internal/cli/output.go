package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitNotFound     = 1 // Counter does not exist (get only)
	ExitCommandError = 2 // Command error (invalid flags, unreadable database, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
// An ExitError with an empty message and no cause produces no output -
// only the exit code (used for get on a missing counter).
type ExitError struct {
	Code    int    // Exit code (use ExitNotFound or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError (2) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter renders command results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the JSON envelope for CLI output.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// CounterPayload is the JSON payload for a single counter result.
type CounterPayload struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Counter outputs a single counter value: the bare integer in text mode,
// an enveloped name/value object in JSON mode.
func (f *OutputFormatter) Counter(name string, value int64) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "ok",
			Data:   CounterPayload{Name: name, Value: value},
		})
	}

	_, err := fmt.Fprintln(f.Writer, value)
	return err
}

// Counters outputs a full dump: name<TAB>value lines sorted by name in text
// mode, a single enveloped object in JSON mode. The engine guarantees no
// ordering; sorting here keeps the text output stable.
func (f *OutputFormatter) Counters(counters map[string]int64) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "ok",
			Data:   counters,
		})
	}

	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(f.Writer, "%s\t%d\n", name, counters[name]); err != nil {
			return err
		}
	}
	return nil
}
