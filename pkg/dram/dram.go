package dram

import (
	"fmt"
	"math/bits"
)

// Fixed timing constants, in cycles.
const (
	DelayBus  = 10
	DelayCAS  = 45
	DelayPre  = 45
	DelayAct  = 45
	FlatDelay = 100
)

// DRAM is a banked array of row buffers behind a fixed or banked delay model.
// It has no notion of which cache missed into it; pkg/memsys decides when to call
// Access and what to do with the returned delay.
type DRAM struct {
	mode       TimingMode
	pagePolicy PagePolicy
	bankBits   uint
	banks      []RowBuffer

	stats Stats
}

// New constructs a DRAM with the given timing mode, page policy (ignored in Flat
// mode), and bank count. numBanks must be a positive power of two; that's a
// configuration error caught once at startup, so New panics rather than returning
// an error.
func New(mode TimingMode, pagePolicy PagePolicy, numBanks int) *DRAM {
	if numBanks <= 0 || numBanks&(numBanks-1) != 0 {
		panic(fmt.Sprintf("dram: bank count %d is not a positive power of two", numBanks))
	}
	return &DRAM{
		mode:       mode,
		pagePolicy: pagePolicy,
		bankBits:   uint(bits.TrailingZeros(uint(numBanks))),
		banks:      make([]RowBuffer, numBanks),
	}
}

// Stats returns the cumulative counters collected so far.
func (d *DRAM) Stats() Stats { return d.stats }

// Bank returns the bank and row a physical line address maps to. Bank is derived
// from the row, not from the line address's low-order bits, which stripes
// consecutive rows across banks rather than consecutive lines.
func (d *DRAM) Bank(lineAddr uint64) (bank int, row uint64) {
	row = lineAddr >> d.bankBits
	bank = int(row % uint64(len(d.banks)))
	return bank, row
}

// Access charges the delay for one DRAM reference and updates Stats. Every access
// succeeds; there is no notion of a DRAM-level miss independent of delay.
func (d *DRAM) Access(lineAddr uint64, isWrite bool) uint64 {
	var delay uint64
	if d.mode == Flat {
		delay = FlatDelay
	} else {
		delay = DelayBus + d.activationDelay(lineAddr)
	}

	if isWrite {
		d.stats.WriteAccess++
		d.stats.WriteDelay += delay
	} else {
		d.stats.ReadAccess++
		d.stats.ReadDelay += delay
	}
	return delay
}

func (d *DRAM) activationDelay(lineAddr uint64) uint64 {
	bank, row := d.Bank(lineAddr)
	buf := &d.banks[bank]

	if d.pagePolicy == ClosePage {
		buf.RowID = row
		buf.Valid = false
		return DelayAct + DelayCAS
	}

	if !buf.Valid {
		*buf = RowBuffer{Valid: true, RowID: row}
		return DelayAct + DelayCAS
	}
	if buf.RowID == row {
		return DelayCAS
	}
	buf.RowID = row
	return DelayPre + DelayAct + DelayCAS
}
