package bloom

import (
	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

// HashKernel produces the base hash pair a Filter derives its bit positions
// from. Implementations must be deterministic. The filter forces h2 odd after
// calling BaseHashes, so kernels need not.
type HashKernel interface {
	BaseHashes(data []byte) (h1 uint64, h2 uint64)
}

// SplitMixKernel is the default kernel: Mix under SeedH1 and SeedH2.
type SplitMixKernel struct{}

func (SplitMixKernel) BaseHashes(data []byte) (uint64, uint64) {
	return BaseHashes(data)
}

// Murmur3Kernel takes h1 and h2 from the two halves of a seeded 128-bit
// murmur3 digest.
type Murmur3Kernel struct {
	Seed uint32
}

func (mk Murmur3Kernel) BaseHashes(data []byte) (uint64, uint64) {
	return murmur3.Sum128WithSeed(data, mk.Seed)
}

// xxhashSalt is prepended to the element when computing h2.
var xxhashSalt = []byte{0xb1, 0x00, 0xf1, 0x17, 0xe2, 0x5a, 0x17, 0x00}

// XXHashKernel uses xxhash64 of the element for h1 and of a fixed salt
// followed by the element for h2.
type XXHashKernel struct{}

func (XXHashKernel) BaseHashes(data []byte) (uint64, uint64) {
	h1 := xxhash.Sum64(data)

	d := xxhash.New()
	_, _ = d.Write(xxhashSalt)
	_, _ = d.Write(data)
	return h1, d.Sum64()
}
