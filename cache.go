// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// CachedEngine keeps recent lookup results of a sealed engine in an LRU
// cache keyed by the query address.
type CachedEngine struct {
	engine Engine
	cache  *lru.Cache[BitString, Match]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats counts cache hits and misses since creation.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// NewCachedEngine wraps e, which must already be sealed.
func NewCachedEngine(e Engine, size int) (*CachedEngine, error) {
	if !e.Sealed() {
		return nil, errors.New("lookup: cached engine needs a sealed engine")
	}
	cache, err := lru.New[BitString, Match](size)
	if err != nil {
		return nil, errors.Wrapf(err, "lookup: creating cache of size %d", size)
	}
	return &CachedEngine{engine: e, cache: cache}, nil
}

// Insert always fails, the wrapped engine is sealed.
func (c *CachedEngine) Insert(string) error {
	return ErrSealed
}

func (c *CachedEngine) Lookup(address string) (Match, error) {
	return lookupText(c, address)
}

func (c *CachedEngine) LookupBits(query BitString) Match {
	if m, ok := c.cache.Get(query); ok {
		c.hits.Add(1)
		return m
	}
	c.misses.Add(1)
	m := c.engine.LookupBits(query)
	c.cache.Add(query, m)
	return m
}

func (c *CachedEngine) Seal() {}

func (c *CachedEngine) Sealed() bool {
	return true
}

func (c *CachedEngine) Len() int {
	return c.engine.Len()
}

func (c *CachedEngine) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
