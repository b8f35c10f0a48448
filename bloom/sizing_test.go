package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveParameters(t *testing.T) {
	type args struct {
		n   uint64
		eps float64
	}
	tests := []struct {
		name  string
		args  args
		mBits uint64
		k     uint32
	}{
		{"1000 at 1%", args{1000, 0.01}, 9586, 7},
		{"single element at 1%", args{1, 0.01}, 10, 7},
		{"5000 at 1%", args{5000, 0.01}, 47926, 7},
		{"million at 0.1%", args{1000000, 0.001}, 14377588, 10},
		{"zero n is treated as one", args{0, 0.01}, 10, 7},
		{"eps above one uses the default", args{1000, 1.5}, 9586, 7},
		{"eps of exactly one uses the default", args{1000, 1}, 9586, 7},
		{"zero eps uses the default", args{1000, 0}, 9586, 7},
		{"negative eps uses the default", args{1000, -0.2}, 9586, 7},
		{"NaN eps uses the default", args{1000, math.NaN()}, 9586, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mBits, k := DeriveParameters(tt.args.n, tt.args.eps)
			require.Equal(t, tt.mBits, mBits)
			require.Equal(t, tt.k, k)
		})
	}
}

func TestDeriveParametersClampsLikeValidInput(t *testing.T) {
	m0, k0 := DeriveParameters(0, 0.01)
	m1, k1 := DeriveParameters(1, 0.01)
	require.Equal(t, m1, m0)
	require.Equal(t, k1, k0)

	mBad, kBad := DeriveParameters(1000, 1.5)
	mDef, kDef := DeriveParameters(1000, 0.01)
	require.Equal(t, mDef, mBad)
	require.Equal(t, kDef, kBad)
}

func TestDeriveParametersNearOneStillPositive(t *testing.T) {
	mBits, k := DeriveParameters(1, 0.999999)
	require.Equal(t, uint64(1), mBits)
	require.Equal(t, uint32(1), k)
}

func TestDeriveParametersSaturates(t *testing.T) {
	mBits, k := DeriveParameters(math.MaxUint64, 1e-9)
	require.Equal(t, uint64(math.MaxUint64), mBits)
	require.Equal(t, uint32(30), k)
}

func TestSizingSanity(t *testing.T) {
	const eps = 0.01
	f := NewWithEstimates(1000, eps)
	require.NotZero(t, f.MBits())
	require.GreaterOrEqual(t, f.K(), uint32(1))
	require.LessOrEqual(t, f.EstimatedFalsePositiveRate(1000), eps*1.5)
}

func TestBitsetBytes(t *testing.T) {
	require.Equal(t, uint64(0), BitsetBytes(0))
	require.Equal(t, uint64(1), BitsetBytes(1))
	require.Equal(t, uint64(1), BitsetBytes(8))
	require.Equal(t, uint64(2), BitsetBytes(9))
	require.Equal(t, uint64(2), BitsetBytes(10))
	require.Equal(t, uint64(1199), BitsetBytes(9586))
	require.Equal(t, uint64(1)<<61, BitsetBytes(math.MaxUint64))
}
