package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV renders snap as a single header row plus a single data row: a trace
// run has one summary, so this is a one-row export of the same label set the
// table prints.
func WriteCSV(w io.Writer, snap Snapshot) error {
	cw := csv.NewWriter(w)

	var header, row []string
	for _, c := range snap.Caches {
		header = append(header,
			c.Label+"_READ_ACCESS", c.Label+"_WRITE_ACCESS",
			c.Label+"_READ_MISS", c.Label+"_WRITE_MISS",
			c.Label+"_READ_MISS_PERC", c.Label+"_WRITE_MISS_PERC",
			c.Label+"_DIRTY_EVICTS")
		row = append(row,
			fmt.Sprint(c.ReadAccess), fmt.Sprint(c.WriteAccess),
			fmt.Sprint(c.ReadMiss), fmt.Sprint(c.WriteMiss),
			fmt.Sprintf("%.4f", c.ReadMissPerc), fmt.Sprintf("%.4f", c.WriteMissPerc),
			fmt.Sprint(c.DirtyEvicts))
	}

	if snap.DRAM != nil {
		header = append(header, "DRAM_READ_ACCESS", "DRAM_WRITE_ACCESS", "DRAM_READ_DELAY_AVG", "DRAM_WRITE_DELAY_AVG")
		row = append(row,
			fmt.Sprint(snap.DRAM.ReadAccess), fmt.Sprint(snap.DRAM.WriteAccess),
			fmt.Sprintf("%.4f", snap.DRAM.ReadDelayAvg), fmt.Sprintf("%.4f", snap.DRAM.WriteDelayAvg))
	}

	header = append(header,
		"MEMSYS_IFETCH_ACCESS", "MEMSYS_IFETCH_AVGDELAY",
		"MEMSYS_LOAD_ACCESS", "MEMSYS_LOAD_AVGDELAY",
		"MEMSYS_STORE_ACCESS", "MEMSYS_STORE_AVGDELAY")
	row = append(row,
		fmt.Sprint(snap.System.IFetchAccess), fmt.Sprintf("%.4f", snap.System.IFetchAvgDelay),
		fmt.Sprint(snap.System.LoadAccess), fmt.Sprintf("%.4f", snap.System.LoadAvgDelay),
		fmt.Sprint(snap.System.StoreAccess), fmt.Sprintf("%.4f", snap.System.StoreAvgDelay))

	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
