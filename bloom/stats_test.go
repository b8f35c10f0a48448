package bloom

import (
	"testing"

	"github.com/forestrie/go-bloomfilter/bloomtesting"
	"github.com/stretchr/testify/require"
)

// Build for 5000 elements at 1%, overfill with 10000, then query 10000
// values that were never inserted.
func TestFalsePositiveRateWithinBound(t *testing.T) {
	tc := bloomtesting.NewTestContext(t, bloomtesting.TestConfig{
		Seed:            20251019,
		TestLabelPrefix: "TestFalsePositiveRateWithinBound",
	})

	const (
		n       = 5000
		eps     = 0.01
		inserts = 10000
		queries = 10000
	)
	f := NewWithEstimates(n, eps)
	present, absent := tc.DisjointUint64s(inserts, queries)

	bloomtesting.InsertAll(f, present)

	require.Zero(t, bloomtesting.CountFalseNegatives(f, present))

	fp := bloomtesting.MeasureFalsePositives(f, absent)
	observed := float64(fp) / queries
	estimate := f.EstimatedFalsePositiveRate(inserts)
	tc.Log.Infof("m=%d k=%d fill=%.4f estimate=%.4f observed=%.4f",
		f.MBits(), f.K(), f.FillRatio(), estimate, observed)

	require.LessOrEqual(t, observed, 3*estimate)
	// A broken index generator tends to under fill the array; the fill ratio
	// should sit near 1 - e^(-k*n/m).
	require.InDelta(t, 0.768, f.FillRatio(), 0.02)
}

func TestFalsePositiveRateAtCapacity(t *testing.T) {
	tc := bloomtesting.NewTestContext(t, bloomtesting.TestConfig{
		Seed:            7,
		TestLabelPrefix: "TestFalsePositiveRateAtCapacity",
	})

	f := NewWithEstimates(20000, 0.01)
	present, absent := tc.DisjointUint64s(20000, 50000)
	bloomtesting.InsertAll(f, present)

	require.Zero(t, bloomtesting.CountFalseNegatives(f, present))
	observed := float64(bloomtesting.MeasureFalsePositives(f, absent)) / 50000
	require.Less(t, observed, 0.02)
}
