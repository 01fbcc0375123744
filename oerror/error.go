package oerror

import "fmt"

// SimError is raised when a caller breaks a contract of the simulation core. It is never returned
// as a recoverable error: it is the value carried by a panic from the assert package.
type SimError struct {
	Err string
}

// New formats a new SimError.
func New(format string, args ...any) *SimError {
	if len(args) == 0 {
		return &SimError{Err: format}
	}
	return &SimError{Err: fmt.Sprintf(format, args...)}
}

func (e *SimError) Error() string {
	return e.Err
}
