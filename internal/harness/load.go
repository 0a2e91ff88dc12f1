// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package harness

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	lookup "github.com/absolutelightning/go-ip-lookup"
)

// Query is a query address with its pre-encoded bits.
type Query struct {
	Address string
	Bits    lookup.BitString
}

// ReadLines returns the trimmed, non blank lines of the file at path.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "harness: opening %s", path)
	}
	defer file.Close()

	lines, err := readLines(file)
	return lines, errors.Wrapf(err, "harness: reading %s", path)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// LoadRoutes builds and seals e from the route file at path.
func LoadRoutes(e lookup.Engine, path string) error {
	lines, err := ReadLines(path)
	if err != nil {
		return err
	}
	return errors.Wrapf(lookup.Build(e, lines), "harness: building from %s", path)
}

// EncodeQueries encodes every address to its full 32 bits, so timed runs
// measure lookups only.
func EncodeQueries(addresses []string) ([]Query, error) {
	queries := make([]Query, 0, len(addresses))
	for i, address := range addresses {
		bits, err := lookup.Encode(address, lookup.FullLength)
		if err != nil {
			return nil, errors.Wrapf(err, "harness: query %d", i+1)
		}
		queries = append(queries, Query{Address: address, Bits: bits})
	}
	return queries, nil
}
