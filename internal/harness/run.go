// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package harness

import (
	"time"

	lookup "github.com/absolutelightning/go-ip-lookup"
)

// Result is the outcome of one query.
type Result struct {
	Address        string
	Found          bool
	ResolvedPrefix string
}

// Run looks up every query once, in order.
func Run(e lookup.Engine, queries []Query) []Result {
	results := make([]Result, len(queries))
	for i, q := range queries {
		m := e.LookupBits(q.Bits)
		results[i] = Result{Address: q.Address, Found: m.Found, ResolvedPrefix: m.Prefix}
	}
	return results
}

// Benchmark looks up all queries times times and returns the elapsed time.
func Benchmark(e lookup.Engine, queries []Query, times int) time.Duration {
	start := time.Now()
	for t := 0; t < times; t++ {
		for _, q := range queries {
			e.LookupBits(q.Bits)
		}
	}
	return time.Since(start)
}

// Consistent reports whether a and b agree line for line on found and
// resolved prefix. first is the index of the first difference, or -1.
func Consistent(a, b []Result) (ok bool, first int) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i].Found != b[i].Found || a[i].ResolvedPrefix != b[i].ResolvedPrefix {
			return false, i
		}
	}
	if len(a) != len(b) {
		return false, n
	}
	return true, -1
}
