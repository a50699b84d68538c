package memsys

import (
	"math/rand/v2"

	"github.com/memsim/cmpmemsim/pkg/cache"
	"github.com/memsim/cmpmemsim/pkg/dram"
	"github.com/memsim/cmpmemsim/pkg/translate"
)

// MemorySystem owns every Cache and the DRAM needed for its Mode, and dispatches
// each reference through them.
type MemorySystem struct {
	mode     Mode
	lineSize int

	dcacheA *cache.Cache // mode A only

	icache *cache.Cache // modes B/C
	dcache *cache.Cache // modes B/C

	icachePerCore [cache.NumCores]*cache.Cache // mode DEF
	dcachePerCore [cache.NumCores]*cache.Cache // mode DEF

	l2         *cache.Cache // modes B/C/DEF
	dramDevice *dram.DRAM   // modes B/C/DEF
	translator *translate.Translator

	partition *cache.PartitionState
	rng       *rand.Rand

	stats Stats
}

// New constructs a MemorySystem for cfg.Mode. It panics (via pkg/cache, pkg/dram,
// and pkg/translate) on configuration that violates a core invariant — callers are
// expected to validate user-facing input before reaching here.
func New(cfg Config) *MemorySystem {
	ms := &MemorySystem{
		mode:     cfg.Mode,
		lineSize: cfg.LineSize,
	}

	if usesPartition(cfg.L1Policy) || usesPartition(cfg.L2Policy) {
		ms.partition = cache.NewPartitionState(cfg.SWPCore0Ways)
	}
	if cfg.L1Policy == cache.Random || cfg.L2Policy == cache.Random {
		ms.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	switch cfg.Mode {
	case ModeA:
		ms.dcacheA = cache.New("DCACHE", cfg.DSize, cfg.DAssoc, cfg.LineSize, cfg.L1Policy, ms.partition, ms.rng)
		return ms

	case ModeB, ModeC:
		ms.icache = cache.New("ICACHE", cfg.ISize, cfg.IAssoc, cfg.LineSize, cfg.L1Policy, ms.partition, ms.rng)
		ms.dcache = cache.New("DCACHE", cfg.DSize, cfg.DAssoc, cfg.LineSize, cfg.L1Policy, ms.partition, ms.rng)
		ms.l2 = cache.New("L2CACHE", cfg.L2Size, cfg.L2Assoc, cfg.LineSize, cfg.L2Policy, ms.partition, ms.rng)

		timingMode := dram.Banked
		if cfg.Mode == ModeB {
			timingMode = dram.Flat
		}
		ms.dramDevice = dram.New(timingMode, cfg.DRAMPagePolicy, numDRAMBanks)
		return ms

	case ModeDEF:
		for c := 0; c < cache.NumCores; c++ {
			ms.icachePerCore[c] = cache.New(perCoreLabel("ICACHE", c), cfg.ISize, cfg.IAssoc, cfg.LineSize, cfg.L1Policy, ms.partition, ms.rng)
			ms.dcachePerCore[c] = cache.New(perCoreLabel("DCACHE", c), cfg.DSize, cfg.DAssoc, cfg.LineSize, cfg.L1Policy, ms.partition, ms.rng)
		}
		ms.l2 = cache.New("L2CACHE", cfg.L2Size, cfg.L2Assoc, cfg.LineSize, cfg.L2Policy, ms.partition, ms.rng)
		ms.dramDevice = dram.New(dram.Banked, cfg.DRAMPagePolicy, numDRAMBanks)
		ms.translator = translate.New(cfg.LineSize)
		return ms

	default:
		panic("memsys: New called with an unparsed mode")
	}
}

func usesPartition(p cache.Policy) bool {
	return p == cache.SWP || p == cache.DWP
}

func perCoreLabel(base string, coreID int) string {
	switch coreID {
	case 0:
		return base + "_0"
	case 1:
		return base + "_1"
	default:
		panic("memsys: core id out of range")
	}
}

// Mode returns the topology this system was built for.
func (ms *MemorySystem) Mode() Mode { return ms.mode }

// Stats returns the cumulative per-reference-type counters.
func (ms *MemorySystem) Stats() Stats { return ms.stats }

// Caches returns every cache this system owns, keyed by its report label.
func (ms *MemorySystem) Caches() map[string]*cache.Cache {
	out := make(map[string]*cache.Cache)
	switch ms.mode {
	case ModeA:
		out[ms.dcacheA.Label()] = ms.dcacheA
	case ModeB, ModeC:
		out[ms.icache.Label()] = ms.icache
		out[ms.dcache.Label()] = ms.dcache
		out[ms.l2.Label()] = ms.l2
	case ModeDEF:
		for c := 0; c < cache.NumCores; c++ {
			out[ms.icachePerCore[c].Label()] = ms.icachePerCore[c]
			out[ms.dcachePerCore[c].Label()] = ms.dcachePerCore[c]
		}
		out[ms.l2.Label()] = ms.l2
	}
	return out
}

// DRAM returns the DRAM device, or nil in mode A where there is none.
func (ms *MemorySystem) DRAM() *dram.DRAM { return ms.dramDevice }
