// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/maps"
)

// PrefixTable is a forwarding table keyed by the exact bit prefix of
// each route. A lookup probes the query's prefixes from 32 bits down.
type PrefixTable struct {
	routes map[BitString]RouteEntry

	// lengths has bit L set when at least one route is L bits long.
	lengths *bitset.BitSet
	sealed  bool
}

func NewPrefixTable() *PrefixTable {
	return &PrefixTable{
		routes:  make(map[BitString]RouteEntry),
		lengths: bitset.New(AddressBits + 1),
	}
}

// Insert adds a route. A route that is already present is overwritten.
func (t *PrefixTable) Insert(line string) error {
	if t.sealed {
		return ErrSealed
	}
	prefix, err := ParseRoute(line)
	if err != nil {
		return err
	}
	t.routes[prefix] = newRouteEntry(prefix)
	t.lengths.Set(uint(prefix.Len()))
	return nil
}

func (t *PrefixTable) Lookup(address string) (Match, error) {
	return lookupText(t, address)
}

// LookupBits returns the first route found while shortening the query
// one bit at a time. Keys are cut to their route's length on insert, so
// a hit at length L is a route of length L. A /0 route is probed last.
func (t *PrefixTable) LookupBits(query BitString) Match {
	for length := query.Len(); length >= 0; length-- {
		if !t.lengths.Test(uint(length)) {
			continue
		}
		if entry, ok := t.routes[query.Prefix(length)]; ok {
			return Match{Found: true, Prefix: entry.NetworkPrefix, Length: entry.PrefixLength}
		}
	}
	return noMatch
}

func (t *PrefixTable) Seal() {
	t.sealed = true
}

func (t *PrefixTable) Sealed() bool {
	return t.sealed
}

func (t *PrefixTable) Len() int {
	return len(t.routes)
}

// PrefixLengths returns the distinct route lengths in ascending order.
func (t *PrefixTable) PrefixLengths() []int {
	lengths := make([]int, 0, t.lengths.Count())
	for i, ok := t.lengths.NextSet(0); ok; i, ok = t.lengths.NextSet(i + 1) {
		lengths = append(lengths, int(i))
	}
	return lengths
}

// Routes returns all entries ordered by prefix length, then by prefix.
func (t *PrefixTable) Routes() []RouteEntry {
	keys := maps.Keys(t.routes)
	slices.SortFunc(keys, BitString.Compare)

	entries := make([]RouteEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, t.routes[k])
	}
	return entries
}
