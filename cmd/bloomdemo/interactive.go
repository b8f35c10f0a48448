package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-bloomfilter/bloom"
	"github.com/google/uuid"
)

// Session is an interactive insert-then-query run over a single filter.
//
// Lines are inserted until the first empty line. Every line after that is a
// query answered with "maybe <line>" or "no <line>" on out. Prompts and the
// closing statistics go to diag.
type Session struct {
	id       uuid.UUID
	filter   *bloom.Filter
	log      logger.Logger
	out      io.Writer
	diag     io.Writer
	inserted uint64
}

func NewSession(log logger.Logger, cfg Config, out io.Writer, diag io.Writer) *Session {
	return &Session{
		id:     uuid.New(),
		filter: bloom.NewWithEstimates(cfg.N, cfg.Eps, cfg.filterOptions()...),
		log:    log,
		out:    out,
		diag:   diag,
	}
}

func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) Filter() *bloom.Filter { return s.filter }

// Run consumes in until EOF.
func (s *Session) Run(in io.Reader) error {
	s.log.Infof("session %s: m=%d k=%d", s.id, s.filter.MBits(), s.filter.K())

	scanner := bufio.NewScanner(in)
	fmt.Fprintln(s.diag, "Insert words, empty line to end:")
	querying := false
	for scanner.Scan() {
		line := scanner.Text()
		if !querying {
			if line == "" {
				querying = true
				s.log.Infof("session %s: %d inserted, querying", s.id, s.inserted)
				fmt.Fprintln(s.diag, "Query words, Ctrl-D to end:")
				continue
			}
			s.filter.AddString(line)
			s.inserted++
			continue
		}

		verdict := "no"
		if s.filter.PossiblyContainsString(line) {
			verdict = "maybe"
		}
		if _, err := fmt.Fprintf(s.out, "%s %s\n", verdict, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("session %s: reading input: %w", s.id, err)
	}

	fmt.Fprintf(s.diag, "m=%d k=%d fill=%g fp_est=%g\n",
		s.filter.MBits(), s.filter.K(), s.filter.FillRatio(),
		s.filter.EstimatedFalsePositiveRate(s.inserted))
	s.log.Infof("session %s: done, %d inserted", s.id, s.inserted)
	return nil
}
