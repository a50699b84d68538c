// Package translate maps virtual line addresses to physical line addresses for the
// multicore memory-system modes, under a fixed page size and a deterministic
// per-core frame mapping (no page table, no faults, no TLB).
package translate
