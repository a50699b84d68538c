// Package cache implements a single set-associative cache instance: address
// decomposition, hit/miss lookup, and victim selection under one of four
// replacement policies (LRU, random, static way partitioning, dynamic way
// partitioning).
//
// A Cache never talks to another Cache or to DRAM — it exposes Access (lookup only)
// and Install (victim selection + insertion, returning whatever line was displaced)
// and lets the caller (pkg/memsys) decide what to do with a miss or an eviction. This
// mirrors how pkg/memsys composes multiple Cache values into a
// hierarchy: the cache itself has no notion of "L1" or "L2", only sets, ways, and a
// policy.
//
// The two way-partitioning quotas (how many ways of a set core 0 is entitled to
// under SWP or DWP) are carried as fields of a PartitionState value rather than
// package-level variables, shared by pointer between every cache in a MemorySystem
// that needs it. DWP's quota still reflects whichever set most recently computed a
// victim — that behavior lives in the shared value, not in how it's stored.
package cache
