package generator

import "errors"

// TransientError marks a failure that might succeed if tried again later
// (network trouble, rate limiting, upstream 5xx, timeouts).
type TransientError struct {
	err error
}

func (e *TransientError) Error() string { return e.err.Error() }
func (e *TransientError) Unwrap() error { return e.err }

// NewTransientError wraps err as transient.
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// FatalError marks a failure that will not go away on its own
// (bad credentials, rejected request).
type FatalError struct {
	err error
}

func (e *FatalError) Error() string { return e.err.Error() }
func (e *FatalError) Unwrap() error { return e.err }

// NewFatalError wraps err as fatal.
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// Class names the failure class of err for logs and metrics.
func Class(err error) string {
	switch {
	case err == nil:
		return "none"
	case IsTransient(err):
		return "transient"
	case IsFatal(err):
		return "fatal"
	default:
		return "unknown"
	}
}

// ClassifyStatus maps an upstream HTTP status code onto the error taxonomy.
// 429 and 5xx are transient; everything else is fatal.
func ClassifyStatus(status int, err error) error {
	if status == 429 || status >= 500 {
		return NewTransientError(err)
	}
	return NewFatalError(err)
}
