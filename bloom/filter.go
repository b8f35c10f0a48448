package bloom

import (
	"math"
	"math/bits"
)

// Filter is a fixed size Bloom filter over arbitrary byte strings.
//
// m and k are fixed at construction. Bits are only ever set, never cleared
// (short of Reset), so an element that has been added is always reported as
// possibly present.
//
// Filter does no locking. Concurrent PossiblyContains calls are safe as long
// as nothing is adding; use SyncFilter when writers and readers overlap.
type Filter struct {
	mBits  uint64
	k      uint32
	bits   []byte
	kernel HashKernel
}

// New returns an empty filter of exactly mBits bits using k hash functions.
//
// mBits == 0 is rejected with ErrZeroBits. k == 0 is clamped to 1.
func New(mBits uint64, k uint32, opts ...Option) (*Filter, error) {
	if mBits == 0 {
		return nil, ErrZeroBits
	}
	if k == 0 {
		k = 1
	}
	options := newOptions(opts...)
	return &Filter{
		mBits:  mBits,
		k:      k,
		bits:   make([]byte, BitsetBytes(mBits)),
		kernel: options.kernel,
	}, nil
}

// NewWithEstimates returns an empty filter sized by DeriveParameters for n
// expected elements at false-positive rate eps. Out of range inputs are
// normalized, never rejected.
func NewWithEstimates(n uint64, eps float64, opts ...Option) *Filter {
	mBits, k := DeriveParameters(n, eps)
	f, err := New(mBits, k, opts...)
	if err != nil {
		// DeriveParameters guarantees mBits >= 1.
		panic(err)
	}
	return f
}

// MBits returns the size of the bit array in bits.
func (f *Filter) MBits() uint64 { return f.mBits }

// K returns the number of hash functions.
func (f *Filter) K() uint32 { return f.k }

// Bytes returns the packed bit array, bit i at byte i/8, bit i%8 (LSB0).
// The slice aliases the filter's storage and must not be modified.
func (f *Filter) Bytes() []byte { return f.bits }

func (f *Filter) hashPair(data []byte) (uint64, uint64) {
	h1, h2 := f.kernel.BaseHashes(data)
	return h1, forceOdd(h2)
}

// Add inserts data. Adding the same data twice leaves the bits unchanged.
func (f *Filter) Add(data []byte) {
	h1, h2 := f.hashPair(data)
	setBitsLSB0(f.bits, f.mBits, f.k, h1, h2)
}

// PossiblyContains reports false if data was definitely never added, and true
// if it may have been.
func (f *Filter) PossiblyContains(data []byte) bool {
	h1, h2 := f.hashPair(data)
	return testBitsLSB0(f.bits, f.mBits, f.k, h1, h2)
}

func (f *Filter) AddString(s string) { f.Add([]byte(s)) }

func (f *Filter) PossiblyContainsString(s string) bool {
	return f.PossiblyContains([]byte(s))
}

// Integer values are hashed over their little-endian encoding.

func (f *Filter) AddUint64(v uint64) {
	var b [8]byte
	writeU64LE(b[:], v)
	f.Add(b[:])
}

func (f *Filter) PossiblyContainsUint64(v uint64) bool {
	var b [8]byte
	writeU64LE(b[:], v)
	return f.PossiblyContains(b[:])
}

func (f *Filter) AddInt64(v int64) { f.AddUint64(uint64(v)) }

func (f *Filter) PossiblyContainsInt64(v int64) bool {
	return f.PossiblyContainsUint64(uint64(v))
}

func (f *Filter) AddUint32(v uint32) {
	var b [4]byte
	writeU32LE(b[:], v)
	f.Add(b[:])
}

func (f *Filter) PossiblyContainsUint32(v uint32) bool {
	var b [4]byte
	writeU32LE(b[:], v)
	return f.PossiblyContains(b[:])
}

func (f *Filter) AddInt32(v int32) { f.AddUint32(uint32(v)) }

func (f *Filter) PossiblyContainsInt32(v int32) bool {
	return f.PossiblyContainsUint32(uint32(v))
}

// SetBits returns the number of bits currently set.
func (f *Filter) SetBits() uint64 {
	var ones uint64
	for _, b := range f.bits {
		ones += uint64(bits.OnesCount8(b))
	}
	return ones
}

// IsEmpty reports whether no bit has been set yet.
func (f *Filter) IsEmpty() bool {
	for _, b := range f.bits {
		if b != 0 {
			return false
		}
	}
	return true
}

// FillRatio returns the fraction of the m bits that are set, in [0, 1].
func (f *Filter) FillRatio() float64 {
	return float64(f.SetBits()) / float64(f.mBits)
}

// EstimatedFalsePositiveRate returns the theoretical false-positive
// probability after inserted distinct elements, assuming ideal hashing:
//
//	p = (1 - e^(-k*n/m))^k
//
// It does not look at the bits; compare with FillRatio()^k for an estimate
// based on the actual state.
func (f *Filter) EstimatedFalsePositiveRate(inserted uint64) float64 {
	k := float64(f.k)
	x := k * float64(inserted) / float64(f.mBits)
	// 1 - e^(-x) without cancellation for small x.
	return math.Pow(-math.Expm1(-x), k)
}

// Reset clears every bit, returning the filter to its empty state. m, k and
// the kernel are kept.
func (f *Filter) Reset() {
	clear(f.bits)
}
