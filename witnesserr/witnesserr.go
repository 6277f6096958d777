// Package witnesserr defines the typed error kinds raised by raw-table
// checks and witness generation: a small enum of failure classes, each
// carrying the handle of the argument that failed and a human-readable
// message.
package witnesserr

import "fmt"

// Kind classifies why raw-table checks or witness generation failed.
type Kind int

const (
	// InconsistentRaw indicates a raw table is malformed: mismatched column
	// lengths within a side, or a zero-length column.
	InconsistentRaw Kind = iota
	// InvariantViolated indicates the terminal running sum/product did not
	// reach its required value (ZERO for lookups, ONE for permutations).
	InvariantViolated
	// InverseOfZero indicates (x+delta) was zero during witness generation.
	// Statistically negligible for honest random delta; callers may retry
	// with a fresh challenge.
	InverseOfZero
	// WidthMismatch indicates a raw table pushed into the trace builder does
	// not have the builder's trace height. The AIR's declared width is not
	// checked against the matrix width, at evaluation time or elsewhere.
	WidthMismatch
)

// String names the kind, for logging and error messages.
func (k Kind) String() string {
	switch k {
	case InconsistentRaw:
		return "InconsistentRaw"
	case InvariantViolated:
		return "InvariantViolated"
	case InverseOfZero:
		return "InverseOfZero"
	case WidthMismatch:
		return "WidthMismatch"
	default:
		return "Unknown"
	}
}

// Error is a typed failure from the witness/AIR pipeline. All four kinds
// are fatal to the call that raised them; none are recovered internally.
type Error struct {
	Kind    Kind
	Handle  string
	Message string
	Wrapped error
}

// New constructs an Error of the given kind with a handle naming the
// argument it came from (may be empty).
func New(kind Kind, handle, msg string) *Error {
	return &Error{Kind: kind, Handle: handle, Message: msg}
}

// Wrap constructs an Error of the given kind, wrapping a lower-level error.
func Wrap(kind Kind, handle string, err error) *Error {
	return &Error{Kind: kind, Handle: handle, Message: err.Error(), Wrapped: err}
}

func (e *Error) Error() string {
	if e.Handle == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s[%s]: %s", e.Kind, e.Handle, e.Message)
}

// Unwrap exposes the wrapped error, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Wrapped
}
