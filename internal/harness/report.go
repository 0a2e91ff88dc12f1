// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package harness

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const reportHeader = "-lookup address-\t- Result -\t-\tnetwork\t-\n"

// WriteReport writes results as a tab separated table.
func WriteReport(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(reportHeader); err != nil {
		return errors.Wrap(err, "harness: writing report header")
	}
	for _, r := range results {
		status, network := "Not found", "0.0.0.0(default)"
		if r.Found {
			status, network = "Found", r.ResolvedPrefix
		}
		if _, err := fmt.Fprintf(bw, "%16s\t%10s\t%16s\n", r.Address, status, network); err != nil {
			return errors.Wrapf(err, "harness: writing result for %s", r.Address)
		}
	}
	return errors.Wrap(bw.Flush(), "harness: flushing report")
}
