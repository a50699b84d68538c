package memsys

import (
	"github.com/memsim/cmpmemsim/pkg/cache"
	"github.com/memsim/cmpmemsim/pkg/dram"
	"github.com/memsim/cmpmemsim/pkg/types"
)

// Fixed per-level hit latencies, in cycles.
const (
	L1HitLatency = 1
	L2HitLatency = 10
)

const numDRAMBanks = 16

// Config is the plain, already-validated shape New builds a MemorySystem from.
// pkg/config owns turning flags and strings into this struct; New itself only
// enforces invariants that would otherwise corrupt the simulation (delegated to
// cache.New and dram.New, which panic).
type Config struct {
	Mode     Mode
	LineSize int

	DSize   types.Bytes
	DAssoc  int
	ISize   types.Bytes
	IAssoc  int
	L2Size  types.Bytes
	L2Assoc int

	L1Policy cache.Policy
	L2Policy cache.Policy

	SWPCore0Ways int

	DRAMPagePolicy dram.PagePolicy

	// Seed feeds the RANDOM policy's pseudorandom source when L1Policy or
	// L2Policy is cache.Random. Callers that want reproducible runs pin it;
	// pkg/config derives a default from wall-clock time when unset.
	Seed uint64
}
