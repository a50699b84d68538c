package trace

import "github.com/memsim/cmpmemsim/pkg/memsys"

// Reference is one parsed trace line.
type Reference struct {
	Type     memsys.RefType
	CoreID   int
	ByteAddr uint64
}
