package emulation

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	UnableToProcess ErrorKind = iota
	UnableToProcessPlatformSpecific
	FailedToProcess
	// UnexpectedMessageDiscarded is expected during normal operation (e.g. a
	// duplicate release) and is never reported to the user.
	UnexpectedMessageDiscarded
)

func (k ErrorKind) String() string {
	switch k {
	case UnableToProcess:
		return "unable to process"
	case UnableToProcessPlatformSpecific:
		return "unable to process (platform specific)"
	case FailedToProcess:
		return "failed to process"
	case UnexpectedMessageDiscarded:
		return "unexpected message discarded"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

type ProcessingError struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *ProcessingError) Error() string {
	switch {
	case e.Reason != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// Is matches any *ProcessingError of the same kind, so sentinel values such as
// ErrDiscarded work with errors.Is.
func (e *ProcessingError) Is(target error) bool {
	var t *ProcessingError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrDiscarded       = &ProcessingError{Kind: UnexpectedMessageDiscarded}
	ErrUnableToProcess = &ProcessingError{Kind: UnableToProcess}
	ErrFailedToProcess = &ProcessingError{Kind: FailedToProcess}
)

func PlatformError(reason string, err error) error {
	return &ProcessingError{Kind: UnableToProcessPlatformSpecific, Reason: reason, Err: err}
}

func Failed(err error) error {
	return &ProcessingError{Kind: FailedToProcess, Err: err}
}

func Unable(reason string) error {
	return &ProcessingError{Kind: UnableToProcess, Reason: reason}
}

// IsDiscarded reports whether err is the silent "unexpected message" outcome.
func IsDiscarded(err error) bool {
	return errors.Is(err, ErrDiscarded)
}
