package cli

import "fmt"

// ExitCode is the process exit status of the CLI.
type ExitCode int

const (
	ExitOK           ExitCode = 0
	ExitGeneralError ExitCode = 1
	ExitInvalidInput ExitCode = 2
)

// CLIError carries an exit code alongside the message shown to the user.
type CLIError struct {
	Code    ExitCode
	Message string
	Err     error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error { return e.Err }

// WrapCLIError builds a CLIError.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
