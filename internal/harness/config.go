// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package harness

import (
	"github.com/pkg/errors"
)

const (
	DefaultIterations = 100
	DefaultOutDir     = "."
)

// Config describes one comparison run.
type Config struct {
	// RouteFile holds one "address/prefixLength" route per line.
	RouteFile string
	// QueryFile holds one dotted-decimal address per line.
	QueryFile string
	// OutDir receives one report file per engine.
	OutDir string
	// Iterations is how many times the query file is looked up when timing.
	Iterations int
	// CacheSize adds a cached trie engine when positive.
	CacheSize int
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	return c
}

func (c Config) Validate() error {
	switch {
	case c.RouteFile == "":
		return errors.New("harness: route file is required")
	case c.QueryFile == "":
		return errors.New("harness: query file is required")
	case c.Iterations < 1:
		return errors.Errorf("harness: iterations must be positive, got %d", c.Iterations)
	case c.CacheSize < 0:
		return errors.Errorf("harness: cache size must not be negative, got %d", c.CacheSize)
	}
	return nil
}
