package bloomtesting

import (
	"math/rand/v2"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	rng *rand.Rand
}

type TestConfig struct {
	// The RNG is seeded from Seed. Tests fix it so that generated data, and
	// therefore observed false-positive counts, are the same from run to run.
	Seed            uint64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Uint64 returns the next value from the context's seeded RNG.
func (c *TestContext) Uint64() uint64 { return c.rng.Uint64() }
