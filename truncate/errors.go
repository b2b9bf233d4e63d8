package truncate

import (
	"errors"
	"fmt"
)

// Sentinel errors for truncation configuration.
var (
	// ErrUnknownStrategy indicates the requested strategy is not one of
	// End, Middle, or Smart.
	ErrUnknownStrategy = errors.New("unknown truncation strategy")

	// ErrNegativePreserve indicates PreserveStart or PreserveEnd is negative.
	ErrNegativePreserve = errors.New("preserve bounds must be non-negative")
)

// Stable machine-readable error codes.
const (
	CodeUnknownStrategy  = "unknown_strategy"
	CodeNegativePreserve = "negative_preserve"
)

// Error wraps truncation errors with context. Configuration errors are
// caller bugs: they are never retryable and are surfaced to the immediate
// caller rather than recovered locally.
type Error struct {
	Code      string // Stable machine-readable code
	Op        string // Operation that failed ("truncate")
	Err       error  // Underlying error
	Retryable bool   // Whether the error is likely transient
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// newConfigError creates a non-retryable configuration error.
func newConfigError(code string, err error) *Error {
	return &Error{
		Code: code,
		Op:   "truncate",
		Err:  err,
	}
}

// IsRetryable checks if an error is likely transient and worth retrying.
// Configuration errors never are.
func IsRetryable(err error) bool {
	var trErr *Error
	if errors.As(err, &trErr) {
		return trErr.Retryable
	}
	return false
}

// IsConfigError checks if an error is an invalid truncation configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrUnknownStrategy) || errors.Is(err, ErrNegativePreserve)
}
