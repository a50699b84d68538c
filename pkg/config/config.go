package config

import (
	"fmt"
	"time"

	"github.com/memsim/cmpmemsim/pkg/cache"
	"github.com/memsim/cmpmemsim/pkg/dram"
	"github.com/memsim/cmpmemsim/pkg/memsys"
	"github.com/memsim/cmpmemsim/pkg/types"
)

// Options are the raw, flag-shaped values the CLI driver collects. Build
// validates them and produces a memsys.Config ready to pass to memsys.New.
type Options struct {
	Mode     string
	LineSize int

	DSizeKB  int
	DAssoc   int
	ISizeKB  int
	IAssoc   int
	L2SizeKB int
	L2Assoc  int

	Repl   string
	L2Repl string

	SWPCore0Ways int
	DRAMPolicy   string

	// Seed seeds the RANDOM policy's source. Zero means "derive one from
	// wall-clock time" for runs that don't need reproducibility pinned explicitly.
	Seed uint64
}

// Build validates opts and converts it into a memsys.Config. Every rejection is a
// wrapped sentinel error from errs.go, identifiable with errors.Is.
func Build(opts Options) (memsys.Config, error) {
	mode, err := memsys.ParseMode(opts.Mode)
	if err != nil {
		return memsys.Config{}, fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}

	l1Policy, err := cache.ParsePolicy(opts.Repl)
	if err != nil {
		return memsys.Config{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, opts.Repl)
	}
	l2Policy, err := cache.ParsePolicy(opts.L2Repl)
	if err != nil {
		return memsys.Config{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, opts.L2Repl)
	}

	dramPolicy, err := dram.ParsePagePolicy(opts.DRAMPolicy)
	if err != nil {
		return memsys.Config{}, fmt.Errorf("%w: %q", ErrUnknownDRAMPolicy, opts.DRAMPolicy)
	}

	if opts.SWPCore0Ways < 0 || opts.SWPCore0Ways > opts.L2Assoc {
		return memsys.Config{}, fmt.Errorf("%w: %d not in [0, %d]", ErrSWPQuotaOutOfRange, opts.SWPCore0Ways, opts.L2Assoc)
	}

	if err := validateGeometry("dcache", opts.DSizeKB, opts.DAssoc, opts.LineSize); err != nil {
		return memsys.Config{}, err
	}
	if err := validateGeometry("icache", opts.ISizeKB, opts.IAssoc, opts.LineSize); err != nil {
		return memsys.Config{}, err
	}
	if err := validateGeometry("l2cache", opts.L2SizeKB, opts.L2Assoc, opts.LineSize); err != nil {
		return memsys.Config{}, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return memsys.Config{
		Mode:           mode,
		LineSize:       opts.LineSize,
		DSize:          types.FromKB(opts.DSizeKB),
		DAssoc:         opts.DAssoc,
		ISize:          types.FromKB(opts.ISizeKB),
		IAssoc:         opts.IAssoc,
		L2Size:         types.FromKB(opts.L2SizeKB),
		L2Assoc:        opts.L2Assoc,
		L1Policy:       l1Policy,
		L2Policy:       l2Policy,
		SWPCore0Ways:   opts.SWPCore0Ways,
		DRAMPagePolicy: dramPolicy,
		Seed:           seed,
	}, nil
}

// validateGeometry rejects a cache geometry before it ever reaches cache.New,
// which would otherwise panic on the same condition — panics are for invariant
// violations deep in a run, not for reporting a bad flag value to an operator.
func validateGeometry(label string, sizeKB, ways, lineSize int) error {
	if sizeKB <= 0 || ways <= 0 || lineSize <= 0 {
		return fmt.Errorf("%w: %s (size_kb=%d ways=%d linesize=%d)", ErrNonPositiveSize, label, sizeKB, ways, lineSize)
	}
	blockBytes := ways * lineSize
	sizeBytes := int(types.FromKB(sizeKB))
	if sizeBytes%blockBytes != 0 {
		return fmt.Errorf("%w: %s", ErrSizeNotMultiple, label)
	}
	numSets := sizeBytes / blockBytes
	if numSets <= 0 || numSets&(numSets-1) != 0 {
		return fmt.Errorf("%w: %s has %d sets", ErrSizeNotMultiple, label, numSets)
	}
	return nil
}
