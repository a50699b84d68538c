package trace

import (
	"io"
	"strings"
	"testing"

	"github.com/memsim/cmpmemsim/pkg/memsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ParsesWellFormedLines(t *testing.T) {
	input := `# a comment

L 0 0x1000
S 1 4096
i 0 0xAB
`
	r := NewReader(strings.NewReader(input))

	ref, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, Reference{Type: memsys.Load, CoreID: 0, ByteAddr: 0x1000}, ref)

	ref, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, Reference{Type: memsys.Store, CoreID: 1, ByteAddr: 4096}, ref)

	ref, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, Reference{Type: memsys.IFetch, CoreID: 0, ByteAddr: 0xAB}, ref)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_MalformedFieldCount(t *testing.T) {
	r := NewReader(strings.NewReader("L 0\n"))
	_, err := r.Next()
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestReader_UnknownType(t *testing.T) {
	r := NewReader(strings.NewReader("X 0 0x0\n"))
	_, err := r.Next()
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestReader_MalformedAddress(t *testing.T) {
	r := NewReader(strings.NewReader("L 0 notanaddr\n"))
	_, err := r.Next()
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestReader_LineNumberingSkipsCommentsAndBlanks(t *testing.T) {
	input := "# header\n\nL 0 0x0\nbad\n"
	r := NewReader(strings.NewReader(input))

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}
