package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/forestrie/go-bloomfilter/bloom"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BLOOMDEMO"

var ErrUnknownKernel = errors.New("bloomdemo: unknown hash kernel")

type Config struct {
	// N and Eps size the interactive filter.
	N   uint64
	Eps float64

	// Seed drives the integer scenario. Zero picks a random seed.
	Seed uint64

	Interactive bool
	Kernel      string
	LogLevel    string
}

// loadConfig resolves flags, BLOOMDEMO_* environment variables and an
// optional config file, in that order of precedence. Two positional
// arguments "n eps" select interactive mode with that sizing.
func loadConfig(args []string) (Config, error) {
	fs := pflag.NewFlagSet("bloomdemo", pflag.ContinueOnError)
	fs.Uint64("n", 1000, "expected element count for the interactive filter")
	fs.Float64("eps", bloom.DefaultFalsePositiveRate, "target false-positive rate for the interactive filter")
	fs.Uint64("seed", 0, "seed for the integer scenario, 0 for random")
	fs.Bool("interactive", false, "read words from stdin instead of running the demo")
	fs.String("kernel", "splitmix", "base hash kernel: splitmix, murmur3 or xxhash")
	fs.String("log-level", "INFO", "log level")
	fs.String("config", "", "optional config file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := Config{
		N:           v.GetUint64("n"),
		Eps:         v.GetFloat64("eps"),
		Seed:        v.GetUint64("seed"),
		Interactive: v.GetBool("interactive"),
		Kernel:      v.GetString("kernel"),
		LogLevel:    v.GetString("log-level"),
	}

	if rest := fs.Args(); len(rest) >= 2 {
		n, err := strconv.ParseUint(rest[0], 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parsing n %q: %w", rest[0], err)
		}
		eps, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return Config{}, fmt.Errorf("parsing eps %q: %w", rest[1], err)
		}
		cfg.N, cfg.Eps, cfg.Interactive = n, eps, true
	}

	if _, err := kernelByName(cfg.Kernel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func kernelByName(name string) (bloom.HashKernel, error) {
	switch strings.ToLower(name) {
	case "", "splitmix":
		return bloom.SplitMixKernel{}, nil
	case "murmur3":
		return bloom.Murmur3Kernel{}, nil
	case "xxhash":
		return bloom.XXHashKernel{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKernel, name)
}

func (cfg Config) filterOptions() []bloom.Option {
	kernel, err := kernelByName(cfg.Kernel)
	if err != nil {
		// loadConfig has already validated the name.
		kernel = bloom.SplitMixKernel{}
	}
	return []bloom.Option{bloom.WithHashKernel(kernel)}
}
