package cli

// Exit codes used by ExitError.
const (
	ExitUsage       = 2
	ExitUnreachable = 3
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(prefix string, err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: prefix + ": " + err.Error()}
}
