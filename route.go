// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

import (
	"strconv"
	"strings"
)

// DefaultRoute is reported as the resolved prefix when nothing matches.
const DefaultRoute = "0.0.0.0"

// RouteEntry is a route as stored by an engine.
type RouteEntry struct {
	PrefixLength  int
	NetworkPrefix string
}

func newRouteEntry(prefix BitString) RouteEntry {
	return RouteEntry{PrefixLength: prefix.Len(), NetworkPrefix: Decode(prefix)}
}

// Match is the outcome of a lookup. Prefix is DefaultRoute and Length is
// zero when Found is false.
type Match struct {
	Found  bool
	Prefix string
	Length int
}

var noMatch = Match{Prefix: DefaultRoute}

func matchOf(prefix BitString) Match {
	return Match{Found: true, Prefix: Decode(prefix), Length: prefix.Len()}
}

// ParseRoute parses "address/prefixLength" and returns the route key,
// the address truncated to exactly prefixLength bits.
func ParseRoute(line string) (BitString, error) {
	address, length, ok := strings.Cut(strings.TrimSpace(line), "/")
	if !ok {
		return BitString{}, &MalformedRouteError{Line: line, Reason: "missing '/' separator"}
	}
	prefixLength, err := strconv.Atoi(strings.TrimSpace(length))
	if err != nil {
		return BitString{}, &MalformedRouteError{Line: line, Reason: "prefix length is not a number"}
	}
	if prefixLength < 0 || prefixLength > AddressBits {
		return BitString{}, &MalformedRouteError{Line: line, Reason: "prefix length out of range [0,32]"}
	}

	// Encode keeps /0 at full width, so cut the key here.
	full, err := Encode(address, FullLength)
	if err != nil {
		return BitString{}, err
	}
	return full.Prefix(prefixLength), nil
}
