package bloomtesting

// Querier is the read side of a filter.
type Querier interface {
	PossiblyContainsUint64(v uint64) bool
}

// Inserter is the write side of a filter.
type Inserter interface {
	AddUint64(v uint64)
}

// DisjointUint64s returns nPresent and nAbsent pseudo random values. Every
// value is distinct, so the two sets never overlap.
func (c *TestContext) DisjointUint64s(nPresent, nAbsent int) (present []uint64, absent []uint64) {
	seen := make(map[uint64]struct{}, nPresent+nAbsent)
	next := func() uint64 {
		for {
			v := c.Uint64()
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			return v
		}
	}

	present = make([]uint64, nPresent)
	for i := range present {
		present[i] = next()
	}
	absent = make([]uint64, nAbsent)
	for i := range absent {
		absent[i] = next()
	}
	return present, absent
}

func InsertAll(f Inserter, values []uint64) {
	for _, v := range values {
		f.AddUint64(v)
	}
}

// CountFalseNegatives returns how many of present the filter reports absent.
// For a correct filter this is always zero.
func CountFalseNegatives(f Querier, present []uint64) int {
	n := 0
	for _, v := range present {
		if !f.PossiblyContainsUint64(v) {
			n++
		}
	}
	return n
}

// MeasureFalsePositives returns how many of absent the filter reports as
// possibly present.
func MeasureFalsePositives(f Querier, absent []uint64) int {
	n := 0
	for _, v := range absent {
		if f.PossiblyContainsUint64(v) {
			n++
		}
	}
	return n
}
