package common

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the codec wraps exactly one of these.
var (
	// ErrValidation is returned when encode input is malformed
	ErrValidation = errors.New("validation error")

	// ErrFormat is returned when encoded data is truncated or inconsistent
	ErrFormat = errors.New("format error")

	// ErrRange is returned when a value does not fit the integer width chosen for it
	ErrRange = errors.New("range error")
)

// Validation errors
var (
	ErrInvalidComponents = fmt.Errorf("invalid number of components: %w", ErrValidation)
	ErrInvalidDimensions = fmt.Errorf("invalid image dimensions: %w", ErrValidation)
	ErrNotNondecreasing  = fmt.Errorf("sequence is not nondecreasing: %w", ErrValidation)
)

// Format errors
var (
	ErrTruncatedHeader   = fmt.Errorf("truncated header: %w", ErrFormat)
	ErrTruncatedPayload  = fmt.Errorf("truncated payload: %w", ErrFormat)
	ErrDimensionMismatch = fmt.Errorf("channel dimensions do not match image header: %w", ErrFormat)
	ErrInsufficientBits  = fmt.Errorf("insufficient bits in stream: %w", ErrFormat)
	ErrCorruptSequence   = fmt.Errorf("corrupt cumulative sequence: %w", ErrFormat)
)

// Range errors
var (
	ErrValueTooWide       = fmt.Errorf("value does not fit in bit width: %w", ErrRange)
	ErrHeaderOverflow     = fmt.Errorf("value overflows header field: %w", ErrRange)
	ErrCumulativeOverflow = fmt.Errorf("cumulative sum overflows: %w", ErrRange)
)
