package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_DisjointFramesForIdenticalVPNs(t *testing.T) {
	tr := New(64) // offset_bits = log2(4096) - log2(64) = 12 - 6 = 6

	vLineAddr := uint64(0x123) << 6 // vpn=0x123, page_offset=0

	p0 := tr.Translate(vLineAddr, 0)
	p1 := tr.Translate(vLineAddr, 1)
	assert.NotEqual(t, p0, p1, "identical VPNs from different cores must map to disjoint physical frames")
}

func TestTranslate_PageOffsetPreserved(t *testing.T) {
	tr := New(64)
	vpn := uint64(0x45)
	offset := uint64(37)
	vLineAddr := (vpn << 6) | offset

	p := tr.Translate(vLineAddr, 0)
	assert.Equal(t, offset, p&((1<<6)-1))
}

func TestTranslate_Core0IdentityInLowRange(t *testing.T) {
	tr := New(64)
	vpn := uint64(0xABCDE) // fits in low 20 bits
	vLineAddr := vpn << 6

	p := tr.Translate(vLineAddr, 0)
	pfn := p >> 6
	assert.Equal(t, vpn&0x000FFFFF, pfn, "core 0 with a VPN under bit 20 maps to itself")
}

func TestTranslate_HighVPNBitsAlignedAtBit21(t *testing.T) {
	tr := New(64)
	vpn := uint64(3) << 20 // high bits set, low 20 bits zero
	vLineAddr := vpn << 6

	p0 := tr.Translate(vLineAddr, 0)
	pfn0 := p0 >> 6
	assert.Equal(t, uint64(3)<<21, pfn0)
}

func TestNew_PanicsOnLineSizeExceedingPageSize(t *testing.T) {
	assert.Panics(t, func() {
		New(8192)
	})
}

func TestNew_PanicsOnNonPowerOfTwoLineSize(t *testing.T) {
	assert.Panics(t, func() {
		New(100)
	})
}
