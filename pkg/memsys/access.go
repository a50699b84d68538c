package memsys

import "github.com/memsim/cmpmemsim/pkg/cache"

// Access dispatches one reference through the hierarchy and returns the delay it
// incurred. cycle is the caller's monotonically nondecreasing reference counter,
// passed straight through to every cache touched as the LRU timestamp.
func (ms *MemorySystem) Access(cycle uint64, byteAddr uint64, refType RefType, coreID int) uint64 {
	lineAddr := byteAddr / uint64(ms.lineSize)

	switch ms.mode {
	case ModeA:
		return ms.accessModeA(cycle, lineAddr, refType, coreID)
	case ModeB, ModeC:
		return ms.accessSplitL1(cycle, lineAddr, refType, coreID, ms.icache, ms.dcache)
	case ModeDEF:
		pLineAddr := ms.translator.Translate(lineAddr, coreID)
		return ms.accessSplitL1(cycle, pLineAddr, refType, coreID, ms.icachePerCore[coreID], ms.dcachePerCore[coreID])
	default:
		panic("memsys: Access called on an unparsed mode")
	}
}

func (ms *MemorySystem) accessModeA(cycle uint64, lineAddr uint64, refType RefType, coreID int) uint64 {
	if refType == IFetch {
		return 0
	}
	isWrite := refType.IsWrite()
	if ms.dcacheA.Access(lineAddr, isWrite, coreID, cycle) == cache.Miss {
		ms.dcacheA.Install(lineAddr, isWrite, coreID, cycle)
	}
	ms.record(refType, 0)
	return 0
}

func (ms *MemorySystem) accessSplitL1(cycle uint64, lineAddr uint64, refType RefType, coreID int, icache, dcache *cache.Cache) uint64 {
	l1 := dcache
	isWrite := refType.IsWrite()
	if refType == IFetch {
		l1 = icache
		isWrite = false
	}

	delay := uint64(L1HitLatency)
	if l1.Access(lineAddr, isWrite, coreID, cycle) == cache.Miss {
		delay += ms.l2Access(cycle, lineAddr, false, coreID)
		evicted := l1.Install(lineAddr, isWrite, coreID, cycle)

		if refType != IFetch && evicted.Valid && evicted.Dirty {
			evictedAddr := l1.EvictedAddr(evicted, lineAddr)
			ms.l2Access(cycle, evictedAddr, true, coreID)
		}
	}

	ms.record(refType, delay)
	return delay
}

// l2Access is the orchestrator's l2_access(line_addr, is_writeback, core_id): look
// up L2, and on miss pull the line from DRAM and install it, discarding the delay
// of any resulting DRAM writeback.
func (ms *MemorySystem) l2Access(cycle uint64, lineAddr uint64, isWriteback bool, coreID int) uint64 {
	delay := uint64(L2HitLatency)

	if ms.l2.Access(lineAddr, isWriteback, coreID, cycle) == cache.Miss {
		delay += ms.dramDevice.Access(lineAddr, false)
		evicted := ms.l2.Install(lineAddr, isWriteback, coreID, cycle)

		if evicted.Valid && evicted.Dirty {
			evictedAddr := ms.l2.EvictedAddr(evicted, lineAddr)
			ms.dramDevice.Access(evictedAddr, true)
		}
	}

	return delay
}
