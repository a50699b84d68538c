package dram

import "errors"

var (
	// ErrUnknownPagePolicy means ParsePagePolicy was given a string naming neither
	// open-page nor close-page.
	ErrUnknownPagePolicy = errors.New("dram: unknown page policy")
)
