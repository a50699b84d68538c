// Package dram models a banked DRAM array with a per-bank row buffer, under either
// an open-page or a close-page policy, plus the fixed 100-cycle flat-latency mode
// used when the rest of the memory system isn't simulating DRAM timing in detail.
//
// A DRAM never talks to a cache; pkg/memsys calls Access once per line that misses
// the last level of cache and folds the returned delay into the reference's total
// latency.
package dram
