package cache

// PartitionState carries the two way-partitioning quotas a cache fleet shares:
// SWPCore0Ways (operator-configured, static) and DWPCore0Ways (recomputed as a side
// effect of every DWP victim search, in whichever set happens to need a victim next).
// Modeling them as fields here rather than package-level variables means two
// MemorySystem instances — e.g. two tests running with t.Parallel — never share
// state.
//
// A single PartitionState is normally shared, by pointer, between every cache in a
// MemorySystem that uses SWP or DWP (so an L1 and the shared L2 can, if configured to
// both use SWP, draw from the same quota). Callers that want independent quotas per
// cache construct one PartitionState per cache instead.
type PartitionState struct {
	SWPCore0Ways int
	DWPCore0Ways int
}

// NewPartitionState seeds both quotas from the operator-configured SWP quota: SWP
// never changes it, and DWP has no observed sets yet, so the configured value is the
// least surprising starting point for core 0's share.
func NewPartitionState(swpCore0Ways int) *PartitionState {
	return &PartitionState{
		SWPCore0Ways: swpCore0Ways,
		DWPCore0Ways: swpCore0Ways,
	}
}
