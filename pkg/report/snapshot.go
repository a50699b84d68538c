package report

import (
	"sort"

	"github.com/memsim/cmpmemsim/pkg/memsys"
)

// CacheMetrics is one cache's labeled row of the external metrics surface.
type CacheMetrics struct {
	Label         string  `json:"label"`
	ReadAccess    uint64  `json:"read_access"`
	WriteAccess   uint64  `json:"write_access"`
	ReadMiss      uint64  `json:"read_miss"`
	WriteMiss     uint64  `json:"write_miss"`
	ReadMissPerc  float64 `json:"read_miss_perc"`
	WriteMissPerc float64 `json:"write_miss_perc"`
	DirtyEvicts   uint64  `json:"dirty_evicts"`
}

// DRAMMetrics is the DRAM row, present whenever the mode uses a DRAM device.
type DRAMMetrics struct {
	ReadAccess    uint64  `json:"read_access"`
	WriteAccess   uint64  `json:"write_access"`
	ReadDelayAvg  float64 `json:"read_delay_avg"`
	WriteDelayAvg float64 `json:"write_delay_avg"`
}

// SystemMetrics is the per-reference-type system totals row.
type SystemMetrics struct {
	IFetchAccess   uint64  `json:"ifetch_access"`
	IFetchAvgDelay float64 `json:"ifetch_avgdelay"`
	LoadAccess     uint64  `json:"load_access"`
	LoadAvgDelay   float64 `json:"load_avgdelay"`
	StoreAccess    uint64  `json:"store_access"`
	StoreAvgDelay  float64 `json:"store_avgdelay"`
}

// Snapshot is a point-in-time capture of everything a completed run reports. The
// Write* functions in this package render it; the core Stats types are never
// formatted directly.
type Snapshot struct {
	Mode   string         `json:"mode"`
	Caches []CacheMetrics `json:"caches"`
	DRAM   *DRAMMetrics   `json:"dram,omitempty"`
	System SystemMetrics  `json:"system"`
}

// Capture builds a Snapshot from a finished MemorySystem.
func Capture(ms *memsys.MemorySystem) Snapshot {
	caches := ms.Caches()
	labels := make([]string, 0, len(caches))
	for label := range caches {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	snap := Snapshot{Mode: ms.Mode().String()}
	for _, label := range labels {
		stats := caches[label].Stats()
		snap.Caches = append(snap.Caches, CacheMetrics{
			Label:         label,
			ReadAccess:    stats.ReadAccess,
			WriteAccess:   stats.WriteAccess,
			ReadMiss:      stats.ReadMiss,
			WriteMiss:     stats.WriteMiss,
			ReadMissPerc:  safePerc(stats.ReadMiss, stats.ReadAccess),
			WriteMissPerc: safePerc(stats.WriteMiss, stats.WriteAccess),
			DirtyEvicts:   stats.DirtyEvicts,
		})
	}

	if d := ms.DRAM(); d != nil {
		dstats := d.Stats()
		snap.DRAM = &DRAMMetrics{
			ReadAccess:    dstats.ReadAccess,
			WriteAccess:   dstats.WriteAccess,
			ReadDelayAvg:  dstats.ReadDelayAvg(),
			WriteDelayAvg: dstats.WriteDelayAvg(),
		}
	}

	sysStats := ms.Stats()
	snap.System = SystemMetrics{
		IFetchAccess:   sysStats.IFetchAccess,
		IFetchAvgDelay: sysStats.IFetchAvgDelay(),
		LoadAccess:     sysStats.LoadAccess,
		LoadAvgDelay:   sysStats.LoadAvgDelay(),
		StoreAccess:    sysStats.StoreAccess,
		StoreAvgDelay:  sysStats.StoreAvgDelay(),
	}
	return snap
}

// safePerc returns 100*num/den, or 0.0 if den is zero, so a cache with no
// accesses reports 0.0 rather than NaN.
func safePerc(num, den uint64) float64 {
	if den == 0 {
		return 0.0
	}
	return 100 * float64(num) / float64(den)
}
