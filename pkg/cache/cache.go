package cache

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/memsim/cmpmemsim/pkg/types"
)

// Outcome is the result of a Cache.Access lookup.
type Outcome int

const (
	Miss Outcome = iota
	Hit
)

func (o Outcome) String() string {
	if o == Hit {
		return "HIT"
	}
	return "MISS"
}

// Stats are the cumulative counters the reporter reads at the end of a run.
type Stats struct {
	ReadAccess  uint64
	ReadMiss    uint64
	WriteAccess uint64
	WriteMiss   uint64
	DirtyEvicts uint64
}

// Cache is one set-associative cache: a rectangular grid of sets x ways, a
// replacement policy, and the cumulative Stats a completed run reports.
type Cache struct {
	label string

	sets      []Set
	ways      int
	indexBits uint
	indexMask uint64

	policy    Policy
	partition *PartitionState
	rng       *rand.Rand

	stats Stats
}

// New constructs a Cache of the given total size, associativity, and line size
// (all consistent units, normally bytes). size must divide evenly into
// ways*lineSize sets, and that set count must be a power of two — both are
// configuration errors caught once at startup, not conditions to recover from
// mid-run, so New panics rather than returning an error.
//
// partition may be nil unless policy is SWP or DWP. rng may be nil unless policy is
// Random.
func New(label string, size types.Bytes, ways, lineSize int, policy Policy, partition *PartitionState, rng *rand.Rand) *Cache {
	if ways <= 0 || ways > MaxWays {
		panic(fmt.Sprintf("cache %s: associativity %d is out of range (1..%d)", label, ways, MaxWays))
	}
	if lineSize <= 0 {
		panic(fmt.Sprintf("cache %s: line size must be positive, got %d", label, lineSize))
	}
	blockBytes := ways * lineSize
	if int(size)%blockBytes != 0 {
		panic(fmt.Sprintf("cache %s: size %d is not a multiple of ways*linesize (%d)", label, size, blockBytes))
	}
	numSets := int(size) / blockBytes
	if numSets <= 0 || numSets&(numSets-1) != 0 {
		panic(fmt.Sprintf("cache %s: %d sets is not a power of two", label, numSets))
	}
	if (policy == SWP || policy == DWP) && partition == nil {
		panic(fmt.Sprintf("cache %s: %s policy requires a PartitionState", label, policy))
	}
	if policy == Random && rng == nil {
		panic(fmt.Sprintf("cache %s: RANDOM policy requires a source", label))
	}

	return &Cache{
		label:     label,
		sets:      make([]Set, numSets),
		ways:      ways,
		indexBits: uint(bits.TrailingZeros(uint(numSets))),
		indexMask: uint64(numSets - 1),
		policy:    policy,
		partition: partition,
		rng:       rng,
	}
}

// Label identifies this cache in diagnostics and reporting (e.g. "DCACHE_0").
func (c *Cache) Label() string { return c.label }

// Ways returns the associativity.
func (c *Cache) Ways() int { return c.ways }

// NumSets returns the number of sets.
func (c *Cache) NumSets() int { return len(c.sets) }

// IndexBits returns log2(sets).
func (c *Cache) IndexBits() uint { return c.indexBits }

// IndexMask returns sets-1.
func (c *Cache) IndexMask() uint64 { return c.indexMask }

// Stats returns the cumulative counters collected so far.
func (c *Cache) Stats() Stats { return c.stats }

// Decompose splits a line address into its set index and tag:
// set_index = A & index_mask, tag = A >> index_bits.
func (c *Cache) Decompose(lineAddr uint64) (setIndex int, tag uint64) {
	return int(lineAddr & c.indexMask), lineAddr >> c.indexBits
}

// SetSnapshot returns a copy of one set's state, for tests that assert the
// ways-per-core and UMON invariants directly.
func (c *Cache) SetSnapshot(setIndex int) Set {
	return c.sets[setIndex]
}

// EvictedAddr reconstructs the line address of a line evicted from this cache,
// given the line address of the reference that triggered the install:
// (evicted.Tag << index_bits) | (lineAddr & index_mask) — the evicted line's own tag
// combined with this cache's view of the set index (which is the same set the new
// line was installed into).
func (c *Cache) EvictedAddr(evicted Line, lineAddr uint64) uint64 {
	return (evicted.Tag << c.indexBits) | (lineAddr & c.indexMask)
}

// Access searches the target set for a line owned by coreID whose tag matches A.
// Matching requires core_id equality even in a shared cache — lines belonging to a
// different core are never reported as a hit. Access never installs a line; a Miss
// here is always followed by the caller deciding whether (and where) to Install.
func (c *Cache) Access(lineAddr uint64, isWrite bool, coreID int, cycle uint64) Outcome {
	setIndex, tag := c.Decompose(lineAddr)
	set := &c.sets[setIndex]

	for w := 0; w < c.ways; w++ {
		line := &set.Lines[w]
		if line.Valid && line.CoreID == coreID && line.Tag == tag {
			line.Dirty = line.Dirty || isWrite
			line.LastAccessTime = cycle
			set.Umon.TotalHits[w]++
			if isWrite {
				c.stats.WriteAccess++
			} else {
				c.stats.ReadAccess++
			}
			return Hit
		}
	}

	if isWrite {
		c.stats.WriteAccess++
		c.stats.WriteMiss++
	} else {
		c.stats.ReadAccess++
		c.stats.ReadMiss++
	}
	set.Umon.TotalMisses++
	return Miss
}

// Install chooses a victim way via findVictim, evicts whatever was there (counting
// a dirty eviction and adjusting WaysPerCore if it held a valid line), and writes
// the new line in its place. It returns the evicted Line by value so the caller can
// decide whether to propagate a writeback without racing the next Install on this
// same cache overwriting a stashed field.
func (c *Cache) Install(lineAddr uint64, isWrite bool, coreID int, cycle uint64) Line {
	setIndex, tag := c.Decompose(lineAddr)
	set := &c.sets[setIndex]

	victim := c.findVictim(set, coreID)
	evicted := set.Lines[victim]
	if evicted.Valid {
		if evicted.Dirty {
			c.stats.DirtyEvicts++
		}
		set.WaysPerCore[evicted.CoreID]--
	}

	set.Lines[victim] = Line{
		Valid:          true,
		Dirty:          isWrite,
		Tag:            tag,
		CoreID:         coreID,
		LastAccessTime: cycle,
	}
	set.WaysPerCore[coreID]++

	return evicted
}

// findVictim picks the way to evict: an invalid way always wins first, regardless of
// policy; otherwise the configured policy decides.
func (c *Cache) findVictim(set *Set, coreID int) int {
	for w := 0; w < c.ways; w++ {
		if !set.Lines[w].Valid {
			return w
		}
	}

	switch c.policy {
	case LRU:
		return lruVictim(set.Lines[:c.ways])
	case Random:
		return c.rng.IntN(c.ways)
	case SWP:
		return c.partitionVictim(set, coreID, c.partition.SWPCore0Ways)
	case DWP:
		quota := c.dwpQuota(set)
		c.partition.DWPCore0Ways = quota
		return c.partitionVictim(set, coreID, quota)
	default:
		panic(fmt.Sprintf("cache %s: unknown policy %v", c.label, c.policy))
	}
}

// lruVictim returns the way with the smallest LastAccessTime, tie-breaking to the
// lowest index (the strict "<" below never replaces the current best on a tie).
func lruVictim(lines []Line) int {
	best := 0
	for w := 1; w < len(lines); w++ {
		if lines[w].LastAccessTime < lines[best].LastAccessTime {
			best = w
		}
	}
	return best
}

// partitionVictim implements the shared SWP/DWP victim-selection procedure: decide
// which core to steal a way from given its quota, then evict that core's LRU line.
// If the target core turns out to own no valid line in this set, fall back to plain
// LRU over every valid way.
func (c *Cache) partitionVictim(set *Set, coreID, core0Quota int) int {
	target := coreID
	if set.WaysPerCore[0] < core0Quota {
		target = 1
	}

	best := -1
	for w := 0; w < c.ways; w++ {
		line := &set.Lines[w]
		if line.Valid && line.CoreID == target {
			if best == -1 || line.LastAccessTime < set.Lines[best].LastAccessTime {
				best = w
			}
		}
	}
	if best == -1 {
		return lruVictim(set.Lines[:c.ways])
	}
	return best
}

// dwpQuota computes the DWP utility formula for this set and returns the new
// core-0 way quota. It does not mutate c.partition itself; the caller (findVictim)
// commits it, so the quota always reflects whichever set most recently ran a DWP
// victim search.
func (c *Cache) dwpQuota(set *Set) int {
	var hits [NumCores]uint64
	for w := 0; w < c.ways; w++ {
		line := &set.Lines[w]
		if line.Valid {
			hits[line.CoreID] += set.Umon.TotalHits[w]
		}
	}
	misses := set.Umon.TotalMisses

	var utility [NumCores]int64
	for core := 0; core < NumCores; core++ {
		utility[core] = int64(0.7*float64(hits[core]) + 0.3*float64(misses))
	}

	sum := utility[0] + utility[1]
	if sum < 1 {
		sum = 1
	}
	return int(utility[0] * int64(c.ways) / sum)
}
