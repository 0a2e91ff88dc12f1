// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Command iplookup builds a hashmap and a trie forwarding table from the
// same route file, times lookups of a query file against both, writes one
// report per engine and checks that the reports agree.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/absolutelightning/go-ip-lookup/internal/harness"
)

func main() {
	var (
		cfg         harness.Config
		logLevel    string
		metricsAddr string
	)
	flag.StringVar(&cfg.RouteFile, "routes", "", "file to build the forwarding table from, one address/prefixLength per line")
	flag.StringVar(&cfg.QueryFile, "queries", "", "file of addresses to look up, one per line")
	flag.StringVar(&cfg.OutDir, "out", harness.DefaultOutDir, "directory for the result files")
	flag.IntVar(&cfg.Iterations, "n", harness.DefaultIterations, "number of timed passes over the query file")
	flag.IntVar(&cfg.CacheSize, "cache", 0, "also run a trie with an LRU result cache of this size")
	flag.StringVar(&logLevel, "log-level", "info", "log level")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics on this address after the run")
	flag.Parse()

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	in := bufio.NewReader(os.Stdin)
	if cfg.RouteFile == "" {
		cfg.RouteFile = prompt(in, os.Stdout, "Enter filepath to build forwarding table: ")
	}
	if cfg.QueryFile == "" {
		cfg.QueryFile = prompt(in, os.Stdout, "Enter filepath to lookup file: ")
	}

	reg := prometheus.NewRegistry()
	runner, err := harness.NewRunner(cfg, log.StandardLogger(), harness.NewMetrics(reg))
	if err != nil {
		log.Fatal(err)
	}

	summary, err := runner.Run()
	if err != nil {
		log.WithError(err).Fatal("Run failed")
	}

	for _, es := range summary.Engines {
		fmt.Printf("%-12s routes=%d time=%s results=%s\n", es.Name, es.Routes, es.Elapsed, es.ReportPath)
	}
	if summary.Consistent {
		fmt.Println("Both the files are same")
	} else {
		fmt.Printf("Files are not same, first difference at query %d\n", summary.FirstDiff+1)
	}

	if metricsAddr != "" {
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		log.WithField("addr", metricsAddr).Info("Serving metrics")
		log.Fatal(http.ListenAndServe(metricsAddr, nil))
	}

	if !summary.Consistent {
		os.Exit(1)
	}
}

func prompt(in *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprintln(out, question)
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		log.WithError(err).Fatal("Reading from stdin")
	}
	return strings.TrimSpace(line)
}
