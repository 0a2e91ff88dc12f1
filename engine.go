// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

import (
	"strings"

	"github.com/pkg/errors"
)

// Engine is a longest-prefix-match forwarding table. Routes are inserted
// first, then the engine is sealed and only read. A sealed engine may be
// queried from many goroutines at once.
type Engine interface {
	// Insert adds a route given as "address/prefixLength".
	Insert(line string) error
	// Lookup resolves a dotted-decimal query address.
	Lookup(address string) (Match, error)
	// LookupBits resolves an already encoded query.
	LookupBits(query BitString) Match
	// Seal ends the build phase.
	Seal()
	Sealed() bool
	// Len is the number of distinct routes.
	Len() int
}

var (
	_ Engine = (*PrefixTable)(nil)
	_ Engine = (*PrefixTrie)(nil)
	_ Engine = (*CachedEngine)(nil)
)

// Build inserts every non blank line into e and seals it.
func Build(e Engine, lines []string) error {
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := e.Insert(line); err != nil {
			return errors.Wrapf(err, "route line %d", i+1)
		}
	}
	e.Seal()
	return nil
}

func lookupText(e Engine, address string) (Match, error) {
	query, err := Encode(address, FullLength)
	if err != nil {
		return noMatch, err
	}
	return e.LookupBits(query), nil
}
