package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable renders snap as aligned tab-separated columns.
func WriteTable(w io.Writer, snap Snapshot) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "MODE\t%s\n\n", snap.Mode)

	fmt.Fprintln(tw, "CACHE\tREAD_ACCESS\tWRITE_ACCESS\tREAD_MISS\tWRITE_MISS\tREAD_MISS%\tWRITE_MISS%\tDIRTY_EVICTS")
	fmt.Fprintln(tw, "-----\t-----------\t------------\t---------\t----------\t----------\t-----------\t------------")
	for _, c := range snap.Caches {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t%d\n",
			c.Label, c.ReadAccess, c.WriteAccess, c.ReadMiss, c.WriteMiss, c.ReadMissPerc, c.WriteMissPerc, c.DirtyEvicts)
	}

	if snap.DRAM != nil {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "DRAM_READ_ACCESS\tDRAM_WRITE_ACCESS\tDRAM_READ_DELAY_AVG\tDRAM_WRITE_DELAY_AVG")
		fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\n", snap.DRAM.ReadAccess, snap.DRAM.WriteAccess, snap.DRAM.ReadDelayAvg, snap.DRAM.WriteDelayAvg)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "MEMSYS_IFETCH_ACCESS\tMEMSYS_IFETCH_AVGDELAY\tMEMSYS_LOAD_ACCESS\tMEMSYS_LOAD_AVGDELAY\tMEMSYS_STORE_ACCESS\tMEMSYS_STORE_AVGDELAY")
	fmt.Fprintf(tw, "%d\t%.3f\t%d\t%.3f\t%d\t%.3f\n",
		snap.System.IFetchAccess, snap.System.IFetchAvgDelay,
		snap.System.LoadAccess, snap.System.LoadAvgDelay,
		snap.System.StoreAccess, snap.System.StoreAvgDelay)
}
