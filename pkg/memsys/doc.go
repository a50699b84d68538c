// Package memsys wires per-core L1 caches, a shared L2, and a DRAM into the
// memory-hierarchy topology named by a Mode, and drives one reference at a time
// through it: L1 lookup, on miss an L2 lookup and install, on L2 miss a DRAM access
// and install, with dirty evictions at each level producing writebacks to the next.
//
// MemorySystem owns every Cache and the DRAM outright; nothing outside this package
// mutates their state. It never imports pkg/config, pkg/trace, or pkg/report — those
// are thin adapters built on top of it, not components it depends on.
package memsys
