package memsys

import "errors"

var (
	// ErrUnknownMode means ParseMode was given a string naming none of A-F.
	ErrUnknownMode = errors.New("memsys: unknown mode")
)
