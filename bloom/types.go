package bloom

import "errors"

const (
	// DefaultFalsePositiveRate replaces any rate outside the open interval (0, 1).
	DefaultFalsePositiveRate = 0.01

	// SeedH1 and SeedH2 are the fixed Mix seeds for the two base hashes.
	SeedH1 uint64 = 0x1234567890abcdef
	SeedH2 uint64 = 0xfedcba0987654321

	// mixMul is the odd multiplier folded in after every mixed block.
	mixMul uint64 = 0x9ddfea08eb382d69

	// splitmix64 constants.
	goldenGamma uint64 = 0x9e3779b97f4a7c15
	smMul1      uint64 = 0xbf58476d1ce4e5b9
	smMul2      uint64 = 0x94d049bb133111eb

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0
)

var (
	ErrZeroBits = errors.New("bloom: mBits must be positive")
)
