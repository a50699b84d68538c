package cache

import "errors"

var (
	// ErrUnknownPolicy means ParsePolicy was given a string that names none of
	// LRU, RANDOM, SWP, DWP.
	ErrUnknownPolicy = errors.New("cache: unknown replacement policy")
)
