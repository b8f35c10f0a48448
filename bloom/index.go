package bloom

import "math/bits"

// indexAt returns (h1 + i*h2) mod mBits using a 128-bit intermediate, so the
// product never wraps before the reduction.
//
// mBits must be non-zero.
func indexAt(h1, h2, i, mBits uint64) uint64 {
	hi, lo := bits.Mul64(i, h2)
	lo, carry := bits.Add64(lo, h1, 0)
	hi += carry
	return bits.Rem64(hi, lo, mBits)
}

// Indices returns the k bit positions for the base hash pair (h1, h2) in a
// filter of mBits bits, in probe order:
//
//	position_i = (h1 + i*h2) mod mBits,  i = 0..k-1
//
// This is the Kirsch-Mitzenmacher double hashing scheme. Indices returns nil
// when mBits is zero.
func Indices(h1, h2 uint64, k uint32, mBits uint64) []uint64 {
	if mBits == 0 {
		return nil
	}
	out := make([]uint64, k)
	for i := range out {
		out[i] = indexAt(h1, h2, uint64(i), mBits)
	}
	return out
}

func setBitsLSB0(bitset []byte, mBits uint64, k uint32, h1, h2 uint64) {
	for i := uint64(0); i < uint64(k); i++ {
		j := indexAt(h1, h2, i, mBits)
		bitset[j>>3] |= 1 << (j & 7)
	}
}

func testBitsLSB0(bitset []byte, mBits uint64, k uint32, h1, h2 uint64) bool {
	for i := uint64(0); i < uint64(k); i++ {
		j := indexAt(h1, h2, i, mBits)
		if bitset[j>>3]&(1<<(j&7)) == 0 {
			return false
		}
	}
	return true
}
