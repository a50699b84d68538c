package report

import (
	"encoding/json"
	"io"
)

// WriteJSON marshals snap as a single indented object, mirroring the reference
// CLI's streamed JSON array but with one object per run instead of one per tick.
func WriteJSON(w io.Writer, snap Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
