package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/memsim/cmpmemsim/pkg/cache"
	"github.com/memsim/cmpmemsim/pkg/dram"
	"github.com/memsim/cmpmemsim/pkg/memsys"
	"github.com/memsim/cmpmemsim/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(t *testing.T) Snapshot {
	t.Helper()
	ms := memsys.New(memsys.Config{
		Mode:           memsys.ModeC,
		LineSize:       64,
		ISize:          types.FromKB(32),
		IAssoc:         8,
		DSize:          types.FromKB(32),
		DAssoc:         8,
		L2Size:         types.FromKB(512),
		L2Assoc:        16,
		L1Policy:       cache.LRU,
		L2Policy:       cache.LRU,
		DRAMPagePolicy: dram.OpenPage,
	})
	ms.Access(1, 0x0, memsys.Load, 0)
	ms.Access(2, 0x0, memsys.Load, 0)
	return Capture(ms)
}

func TestCapture_ZeroAccessCacheReportsZeroNotNaN(t *testing.T) {
	snap := sampleSnapshot(t)
	for _, c := range snap.Caches {
		if c.Label == "ICACHE" {
			assert.Equal(t, 0.0, c.ReadMissPerc)
			assert.Equal(t, 0.0, c.WriteMissPerc)
		}
	}
}

func TestCapture_MissPercentages(t *testing.T) {
	snap := sampleSnapshot(t)
	for _, c := range snap.Caches {
		if c.Label == "DCACHE" {
			require.EqualValues(t, 2, c.ReadAccess)
			require.EqualValues(t, 1, c.ReadMiss)
			assert.InDelta(t, 50.0, c.ReadMissPerc, 1e-9)
		}
	}
}

func TestWriteTable_ContainsLabels(t *testing.T) {
	snap := sampleSnapshot(t)
	var buf bytes.Buffer
	WriteTable(&buf, snap)
	out := buf.String()
	assert.Contains(t, out, "DCACHE")
	assert.Contains(t, out, "L2CACHE")
	assert.Contains(t, out, "DRAM_READ_ACCESS")
	assert.Contains(t, out, "MEMSYS_LOAD_ACCESS")
}

func TestWriteCSV_OneHeaderOneDataRowSameFieldCount(t *testing.T) {
	snap := sampleSnapshot(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, snap))

	r := csv.NewReader(strings.NewReader(buf.String()))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, len(records[0]), len(records[1]))
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	snap := sampleSnapshot(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, snap))

	var got Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, snap, got)
}

func TestWriteHTML_RendersWithoutError(t *testing.T) {
	snap := sampleSnapshot(t)
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, snap))
	assert.Contains(t, buf.String(), "Memory Hierarchy Report")
}
