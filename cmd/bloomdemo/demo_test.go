package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("TestRunDemo")

	var out bytes.Buffer
	require.NoError(t, runDemo(&out, Config{Seed: 1, Kernel: "splitmix"}, log))

	words, ints, found := strings.Cut(out.String(), separator+"\n")
	require.True(t, found)

	assert.Equal(t, strings.Join([]string{
		"m(bits)=9586 k=7",
		"fill_ratio=0.0044",
		"fp_rate_estimate(n=6)=0.0000",
		"alice: possibly present",
		"bob: possibly present",
		"trent: definitely absent",
		"mallory: possibly present",
		"oscar: definitely absent",
		"carol: possibly present",
		"peggy: definitely absent",
		"",
	}, "\n"), words)

	assert.True(t, strings.HasPrefix(ints, "Integer test:\nm(bits)=47926 k=7\n"), ints)
	assert.Contains(t, ints, "fp_rate_estimate(n=10000)=0.1574")
	assert.Contains(t, ints, "out of 10000")
	assert.NotContains(t, ints, "Error:")
}

func TestRunDemoIsSeeded(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("TestRunDemoIsSeeded")

	var a, b bytes.Buffer
	require.NoError(t, runDemo(&a, Config{Seed: 77, Kernel: "xxhash"}, log))
	require.NoError(t, runDemo(&b, Config{Seed: 77, Kernel: "xxhash"}, log))
	assert.Equal(t, a.String(), b.String())
}

func TestRunIntegersHasNoFalseNegatives(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		var out bytes.Buffer
		require.Zero(t, runIntegers(&out, seed))
		assert.NotContains(t, out.String(), "Error:")
	}
}
