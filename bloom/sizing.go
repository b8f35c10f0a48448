package bloom

import (
	"math"
	"math/big"
)

// floatPrec is the mantissa width used for parameter derivation.
const floatPrec = 128

// ln2 to more digits than float64 can hold.
const ln2Digits = "0.693147180559945309417232121458176568"

// DeriveParameters returns the bit array size and hash count for n expected
// elements at false-positive rate eps:
//
//	m = ceil(-n * ln(eps) / ln(2)^2)
//	k = ceil((m / n) * ln(2))
//
// k is derived from the unrounded m. n == 0 is treated as 1 and any eps not
// strictly inside (0, 1) is replaced by DefaultFalsePositiveRate. The result
// always satisfies mBits >= 1 and k >= 1; mBits saturates at math.MaxUint64.
func DeriveParameters(n uint64, eps float64) (mBits uint64, k uint32) {
	if n == 0 {
		n = 1
	}
	if !(eps > 0 && eps < 1) {
		eps = DefaultFalsePositiveRate
	}

	ln2, _, _ := big.ParseFloat(ln2Digits, 10, floatPrec, big.ToNearestEven)
	ln2sq := newFloat().Mul(ln2, ln2)

	nf := newFloat().SetUint64(n)
	mf := newFloat().Mul(nf, newFloat().SetFloat64(-math.Log(eps)))
	mf.Quo(mf, ln2sq)

	kf := newFloat().Quo(mf, nf)
	kf.Mul(kf, ln2)

	mBits = ceilUint64(mf)
	if mBits == 0 {
		mBits = 1
	}
	kk := ceilUint64(kf)
	switch {
	case kk == 0:
		k = 1
	case kk > math.MaxUint32:
		k = math.MaxUint32
	default:
		k = uint32(kk)
	}
	return mBits, k
}

// BitsetBytes returns ceil(mBits/8).
func BitsetBytes(mBits uint64) uint64 {
	return mBits/8 + (mBits%8+7)/8
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(floatPrec)
}

// ceilUint64 rounds a non-negative x up to an integer, saturating at
// math.MaxUint64.
func ceilUint64(x *big.Float) uint64 {
	if x.Sign() <= 0 {
		return 0
	}
	i, acc := x.Int(nil)
	if acc == big.Below {
		i.Add(i, big.NewInt(1))
	}
	if !i.IsUint64() {
		return math.MaxUint64
	}
	return i.Uint64()
}
