package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-bloomfilter/bloom"
	"golang.org/x/sync/errgroup"
)

const (
	wordsExpected = 1000
	wordsEps      = 0.01

	intsExpected = 5000
	intsEps      = 0.01
	intsTotal    = 20000

	separator = "--------------------------"
)

var (
	demoWords   = []string{"alice", "bob", "carol", "dave", "erin", "mallory"}
	demoQueries = []string{"alice", "bob", "trent", "mallory", "oscar", "carol", "peggy"}
)

// runDemo runs the word and integer scenarios on independent filters and
// writes their reports to w, words first.
func runDemo(w io.Writer, cfg Config, log logger.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Infof("demo: kernel=%s seed=%d", cfg.Kernel, seed)

	var words, ints bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		runWords(&words, cfg.filterOptions()...)
		return nil
	})
	g.Go(func() error {
		falseNegatives := runIntegers(&ints, seed, cfg.filterOptions()...)
		if falseNegatives != 0 {
			return fmt.Errorf("integer scenario: %d false negatives", falseNegatives)
		}
		return nil
	})
	err := g.Wait()

	// Reports are written even on failure so the false negatives show up.
	if _, werr := words.WriteTo(w); werr != nil {
		return werr
	}
	if _, werr := fmt.Fprintln(w, separator); werr != nil {
		return werr
	}
	if _, werr := ints.WriteTo(w); werr != nil {
		return werr
	}
	return err
}

func writeStats(w io.Writer, f *bloom.Filter, inserted uint64) {
	fmt.Fprintf(w, "m(bits)=%d k=%d\n", f.MBits(), f.K())
	fmt.Fprintf(w, "fill_ratio=%.4f\n", f.FillRatio())
	fmt.Fprintf(w, "fp_rate_estimate(n=%d)=%.4f\n", inserted, f.EstimatedFalsePositiveRate(inserted))
}

func runWords(w io.Writer, opts ...bloom.Option) {
	f := bloom.NewWithEstimates(wordsExpected, wordsEps, opts...)
	for _, s := range demoWords {
		f.AddString(s)
	}

	writeStats(w, f, uint64(len(demoWords)))
	for _, q := range demoQueries {
		verdict := "definitely absent"
		if f.PossiblyContainsString(q) {
			verdict = "possibly present"
		}
		fmt.Fprintf(w, "%s: %s\n", q, verdict)
	}
}

// runIntegers inserts every other value of a random sample, then queries the
// whole sample. It returns the number of false negatives, which must be zero.
func runIntegers(w io.Writer, seed uint64, opts ...bloom.Option) int {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	values := make([]uint64, intsTotal)
	for i := range values {
		values[i] = rng.Uint64()
	}

	f := bloom.NewWithEstimates(intsExpected, intsEps, opts...)
	for i := 0; i < len(values); i += 2 {
		f.AddUint64(values[i])
	}

	falsePositives, falseNegatives := 0, 0
	for i, v := range values {
		maybe := f.PossiblyContainsUint64(v)
		present := i%2 == 0
		switch {
		case maybe && !present:
			falsePositives++
		case !maybe && present:
			falseNegatives++
			fmt.Fprintf(w, "Error: false negative for %d\n", v)
		}
	}

	fmt.Fprintln(w, "Integer test:")
	writeStats(w, f, intsTotal/2)
	fmt.Fprintf(w, "False positives: %d out of %d\n", falsePositives, intsTotal/2)
	return falseNegatives
}
