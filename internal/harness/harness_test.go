// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package harness

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	lookup "github.com/absolutelightning/go-ip-lookup"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", " 10.0.0.0/8 ", "", "\t", "10.1.0.0/16")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.0/8", "10.1.0.0/16"}, lines)

	_, err = ReadLines(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoadRoutes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "10.0.0.0/8", "10.1.0.0/16")
	bad := writeFile(t, dir, "bad.txt", "10.0.0.0/8", "10.1.0.0")

	trie := lookup.NewPrefixTrie()
	require.NoError(t, LoadRoutes(trie, good))
	require.True(t, trie.Sealed())
	require.Equal(t, 2, trie.Len())

	err := LoadRoutes(lookup.NewPrefixTable(), bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.txt")
	require.Contains(t, err.Error(), "route line 2")

	var routeErr *lookup.MalformedRouteError
	require.True(t, errors.As(err, &routeErr))
}

func TestEncodeQueries(t *testing.T) {
	t.Parallel()

	queries, err := EncodeQueries([]string{"10.1.2.5", "0.0.0.0"})
	require.NoError(t, err)
	require.Len(t, queries, 2)
	require.Equal(t, "10.1.2.5", queries[0].Address)
	require.Equal(t, 32, queries[0].Bits.Len())
	require.Equal(t, "10.1.2.5", lookup.Decode(queries[0].Bits))

	_, err = EncodeQueries([]string{"10.1.2.5", "10.1.2.5/8"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "query 2")
	var addrErr *lookup.InvalidAddressError
	require.True(t, errors.As(err, &addrErr))
}

func TestRunAndReport(t *testing.T) {
	t.Parallel()

	trie := lookup.NewPrefixTrie()
	require.NoError(t, lookup.Build(trie, []string{"10.0.0.0/8", "10.1.0.0/16", "10.1.2.0/24"}))

	queries, err := EncodeQueries([]string{"10.1.2.5", "10.1.9.9", "11.0.0.0"})
	require.NoError(t, err)

	results := Run(trie, queries)
	require.Equal(t, []Result{
		{Address: "10.1.2.5", Found: true, ResolvedPrefix: "10.1.2.0"},
		{Address: "10.1.9.9", Found: true, ResolvedPrefix: "10.1.0.0"},
		{Address: "11.0.0.0", Found: false, ResolvedPrefix: lookup.DefaultRoute},
	}, results)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))
	require.Equal(t, reportHeader+
		"        10.1.2.5\t     Found\t        10.1.2.0\n"+
		"        10.1.9.9\t     Found\t        10.1.0.0\n"+
		"        11.0.0.0\t Not found\t0.0.0.0(default)\n", buf.String())

	require.GreaterOrEqual(t, Benchmark(trie, queries, 10), time.Duration(0))
}

func TestConsistent(t *testing.T) {
	t.Parallel()

	a := []Result{
		{Address: "1.1.1.1", Found: true, ResolvedPrefix: "1.0.0.0"},
		{Address: "2.2.2.2", Found: false, ResolvedPrefix: "0.0.0.0"},
	}

	ok, first := Consistent(a, a)
	require.True(t, ok)
	require.Equal(t, -1, first)

	ok, first = Consistent(nil, nil)
	require.True(t, ok)
	require.Equal(t, -1, first)

	b := []Result{a[0], {Address: "2.2.2.2", Found: true, ResolvedPrefix: "0.0.0.0"}}
	ok, first = Consistent(a, b)
	require.False(t, ok)
	require.Equal(t, 1, first)

	ok, first = Consistent(a, a[:1])
	require.False(t, ok)
	require.Equal(t, 1, first)
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := Config{RouteFile: "r", QueryFile: "q"}.WithDefaults()
	require.Equal(t, DefaultIterations, cfg.Iterations)
	require.Equal(t, DefaultOutDir, cfg.OutDir)
	require.NoError(t, cfg.Validate())

	require.Error(t, Config{QueryFile: "q", Iterations: 1}.Validate())
	require.Error(t, Config{RouteFile: "r", Iterations: 1}.Validate())
	require.Error(t, Config{RouteFile: "r", QueryFile: "q", Iterations: -1}.Validate())
	require.Error(t, Config{RouteFile: "r", QueryFile: "q", Iterations: 1, CacheSize: -1}.Validate())
}
