package random

import "errors"

// Common errors.
var (
	// ErrInvalidArgument reports a caller-supplied parameter that is out
	// of range: a negative shape dimension, an unsupported distribution,
	// a split count below two, or an empty integer range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState reports a malformed key: byte material of the
	// wrong width cannot be interpreted as a key.
	ErrInvalidState = errors.New("invalid key state")
)
