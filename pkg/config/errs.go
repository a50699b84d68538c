package config

import "errors"

var (
	// ErrUnknownMode is returned when memsys.ParseMode rejects the mode string; the
	// memsys error itself is not wrapped.
	ErrUnknownMode = errors.New("config: unknown mode")
	// ErrUnknownPolicy is returned when cache.ParsePolicy rejects a policy string;
	// the cache error itself is not wrapped.
	ErrUnknownPolicy = errors.New("config: unknown replacement policy")
	// ErrUnknownDRAMPolicy is returned when dram.ParsePagePolicy rejects the page
	// policy string; the dram error itself is not wrapped.
	ErrUnknownDRAMPolicy = errors.New("config: unknown dram policy")
	// ErrSWPQuotaOutOfRange means swp_core0_ways fell outside [0, l2assoc].
	ErrSWPQuotaOutOfRange = errors.New("config: swp_core0_ways out of range")
	// ErrNonPositiveSize means a cache size, associativity, or line size was <= 0.
	ErrNonPositiveSize = errors.New("config: size must be positive")
	// ErrSizeNotMultiple means a cache size (KB) did not divide evenly into
	// associativity * line size, or did but gave a set count that is not a power
	// of two.
	ErrSizeNotMultiple = errors.New("config: size is not a multiple of ways*linesize")
)
