// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lookup

import (
	"fmt"
	"math/rand"
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yl2chen/cidranger"
)

// engines returns one empty instance of every engine kind.
func engines() map[string]Engine {
	return map[string]Engine{
		"table": NewPrefixTable(),
		"trie":  NewPrefixTrie(),
	}
}

func randomAddr(r *rand.Rand) string {
	var octets [4]byte
	r.Read(octets[:])
	return netip.AddrFrom4(octets).String()
}

// randomRoutes returns n route lines. Routes are grown from a small pool
// of base addresses so that many of them overlap.
func randomRoutes(r *rand.Rand, n int) []string {
	bases := make([]string, 16)
	for i := range bases {
		bases[i] = randomAddr(r)
	}
	routes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		base := bases[r.Intn(len(bases))]
		if r.Intn(4) == 0 {
			base = randomAddr(r)
		}
		routes = append(routes, fmt.Sprintf("%s/%d", base, r.Intn(AddressBits+1)))
	}
	return routes
}

// randomQueries mixes addresses inside the routes with random ones.
func randomQueries(r *rand.Rand, routes []string, n int) []string {
	queries := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if len(routes) == 0 || r.Intn(3) == 0 {
			queries = append(queries, randomAddr(r))
			continue
		}
		pfx := netip.MustParsePrefix(routes[r.Intn(len(routes))]).Masked()
		host := pfx.Addr().As4()
		var noise [4]byte
		r.Read(noise[:])
		for j := range host {
			bitsLeft := pfx.Bits() - j*8
			switch {
			case bitsLeft <= 0:
				host[j] = noise[j]
			case bitsLeft < 8:
				host[j] |= noise[j] & (0xff >> bitsLeft)
			}
		}
		queries = append(queries, netip.AddrFrom4(host).String())
	}
	return queries
}

// oracle answers lookups with cidranger, an independent LPM trie.
type oracle struct {
	ranger cidranger.Ranger
}

func newOracle(t testing.TB, routes []string) *oracle {
	t.Helper()
	ranger := cidranger.NewPCTrieRanger()
	for _, line := range routes {
		_, network, err := net.ParseCIDR(line)
		require.NoError(t, err)
		require.NoError(t, ranger.Insert(cidranger.NewBasicRangerEntry(*network)))
	}
	return &oracle{ranger: ranger}
}

func (o *oracle) lookup(t testing.TB, address string) Match {
	t.Helper()
	entries, err := o.ranger.ContainingNetworks(net.ParseIP(address).To4())
	require.NoError(t, err)

	best := -1
	var prefix string
	for _, e := range entries {
		network := e.Network()
		ones, _ := network.Mask.Size()
		if ones > best {
			best = ones
			prefix = network.IP.Mask(network.Mask).To4().String()
		}
	}
	if best < 0 {
		return noMatch
	}
	return Match{Found: true, Prefix: prefix, Length: best}
}

func mustBuild(t testing.TB, e Engine, routes ...string) Engine {
	t.Helper()
	require.NoError(t, Build(e, routes))
	return e
}

func mustLookup(t testing.TB, e Engine, address string) Match {
	t.Helper()
	m, err := e.Lookup(address)
	require.NoError(t, err)
	return m
}
