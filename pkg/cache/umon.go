package cache

// UMON is the per-set utility monitor that DWP reads to estimate how much each core
// benefits from the ways it currently holds. It is updated only by Cache.Access, on
// both hits and misses, and is otherwise passive — UMON never selects a victim
// itself, it only accumulates the counters DWP's quota formula consumes.
type UMON struct {
	// TotalHits[w] counts hits serviced by way w, regardless of which core's line
	// was resident there at the time (DWP attributes it to whichever core currently
	// owns way w when the quota is computed, not to the core that was present on
	// any individual past hit).
	TotalHits [MaxWays]uint64
	// TotalMisses counts every miss in this set, shared across both cores rather
	// than attributed per core.
	TotalMisses uint64
}
