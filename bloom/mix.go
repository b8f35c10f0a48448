package bloom

// splitmix64 is the SplitMix64 output function, used as the block finalizer.
func splitmix64(x uint64) uint64 {
	x += goldenGamma
	x = (x ^ (x >> 30)) * smMul1
	x = (x ^ (x >> 27)) * smMul2
	return x ^ (x >> 31)
}

// Mix hashes data with seed into a 64-bit value.
//
// Each 8-byte block is read little-endian, passed through splitmix64 and
// folded into the running hash with an odd multiplier. A 1-7 byte tail is
// zero-padded to a full word and folded the same way. The running hash gets a
// final splitmix64 pass before it is returned. Mix is pure: equal (data, seed)
// always yield equal results on every platform.
func Mix(data []byte, seed uint64) uint64 {
	h := seed ^ (uint64(len(data)) * mixMul)

	for len(data) >= 8 {
		h = foldBlock(h, readU64LE(data))
		data = data[8:]
	}

	if len(data) > 0 {
		var tail [8]byte
		copy(tail[:], data)
		h = foldBlock(h, readU64LE(tail[:]))
	}

	return splitmix64(h)
}

func foldBlock(h, v uint64) uint64 {
	h ^= splitmix64(v)
	h *= mixMul
	return h ^ (h >> 47)
}

// BaseHashes returns the two base hashes used for double hashing. h2 is
// always odd.
func BaseHashes(data []byte) (h1 uint64, h2 uint64) {
	h1 = Mix(data, SeedH1)
	h2 = forceOdd(Mix(data, SeedH2))
	return h1, h2
}

// forceOdd flips the low bit of an even h2. An odd stride cannot share the
// factor 2 with m, which keeps the probe sequence from cycling early when m
// is a power of two.
func forceOdd(h2 uint64) uint64 {
	if h2&1 == 0 {
		h2 ^= 1
	}
	return h2
}
