package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unexpected runtime failure
	ExitCommandError = 2 // Usage error (bad input, missing profile, unknown keys)
)

// Error codes surfaced in messages and JSON responses.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeProfile    = "E002" // Profile load failure (fatal at startup)
	ErrCodeJournal    = "E003" // Journal open/read/write failure
	ErrCodeQuantity   = "E004" // Invalid quantity input
	ErrCodeUnknownKey = "E005" // Unknown category or activity key
	ErrCodeConfirm    = "E006" // Destructive action not confirmed
)

// ExitError carries a specific process exit code out of a command.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
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

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Response is the standard JSON envelope for command output.
type Response struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *ErrorBody  `json:"error,omitempty"` // error details
}

// ErrorBody is the error structure inside a Response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes a success Response to the command's stdout.
func respondJSON(cmd *cobra.Command, data interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(Response{Status: "ok", Data: data})
}

// warn writes a non-fatal warning to the command's stderr so it never
// corrupts JSON output on stdout.
func warn(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Warning: "+format+"\n", args...)
}
