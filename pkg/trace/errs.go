package trace

import "errors"

var (
	// ErrMalformedLine means a trace line didn't split into exactly three
	// whitespace-separated fields, or its core id or address field didn't parse
	// as an integer.
	ErrMalformedLine = errors.New("trace: malformed line")
	// ErrUnknownType means a trace line's type field was none of I, L, S
	// (case-insensitive).
	ErrUnknownType = errors.New("trace: unknown reference type")
)
