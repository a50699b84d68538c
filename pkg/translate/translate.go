package translate

import (
	"fmt"
	"math/bits"
)

// PageSize is fixed at 4KB.
const PageSize = 4096

// NumCores is fixed at 2, matching pkg/cache.NumCores.
const NumCores = 2

// Translator splits a virtual line address into a VPN and page offset, and maps the
// VPN to a physical frame number deterministically per core.
type Translator struct {
	offsetBits uint
	offsetMask uint64
}

// New builds a Translator for the given cache line size. lineSize must be a positive
// power of two no larger than PageSize; violating that is a configuration error
// caught once at startup, so New panics rather than returning an error.
func New(lineSize int) *Translator {
	if lineSize <= 0 || lineSize&(lineSize-1) != 0 {
		panic(fmt.Sprintf("translate: line size %d is not a positive power of two", lineSize))
	}
	if lineSize > PageSize {
		panic(fmt.Sprintf("translate: line size %d exceeds page size %d", lineSize, PageSize))
	}
	offsetBits := uint(bits.TrailingZeros(uint(PageSize))) - uint(bits.TrailingZeros(uint(lineSize)))
	return &Translator{
		offsetBits: offsetBits,
		offsetMask: (uint64(1) << offsetBits) - 1,
	}
}

// Translate maps a virtual line address to a physical line address for coreID.
func (tr *Translator) Translate(vLineAddr uint64, coreID int) uint64 {
	vpn := vLineAddr >> tr.offsetBits
	pageOffset := vLineAddr & tr.offsetMask

	pfn := vpnToPFN(vpn, coreID)
	return (pfn << tr.offsetBits) | pageOffset
}

// vpnToPFN segregates the low 20 bits of the VPN per core while leaving high VPN
// bits aligned at bit 21, so two cores presenting identical VPNs land in disjoint
// physical frames in the low range.
func vpnToPFN(vpn uint64, coreID int) uint64 {
	return (vpn & 0x000FFFFF) + (uint64(coreID) << 21) + ((vpn >> 20) << 21)
}
