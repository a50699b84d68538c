// Package config turns the CLI driver's flag values into a validated
// memsys.Config, validating every field before any domain object is built.
// Every rejection uses a sentinel error declared in errs.go, wrapped with the
// offending value via fmt.Errorf's %w.
package config
