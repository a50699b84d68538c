// Package report turns a finished MemorySystem's counters into labeled metrics
// and renders them as a table on stdout, plus optional CSV, JSON, and HTML
// exports. Snapshot is the only type here that knows how to format itself —
// the core types (cache.Stats, dram.Stats, memsys.Stats) never do.
package report
