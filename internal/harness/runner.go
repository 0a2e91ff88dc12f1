// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package harness

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	lookup "github.com/absolutelightning/go-ip-lookup"
)

// Engine names, also used in report file names and metric labels.
const (
	EngineHashmap    = "hashmap"
	EngineTrie       = "trie"
	EngineCachedTrie = "trie_cached"
)

// EngineSummary is what one engine did during a run.
type EngineSummary struct {
	Name       string
	Routes     int
	Elapsed    time.Duration
	ReportPath string
	Results    []Result
}

// Summary is the outcome of Runner.Run. FirstDiff is the index of the
// first query the engines disagree on, or -1.
type Summary struct {
	RunID      string
	Engines    []EngineSummary
	Consistent bool
	FirstDiff  int
}

// Runner builds every engine from the same route file, times and reports
// its lookups and checks that all engines agree.
type Runner struct {
	runID   string
	cfg     Config
	metrics *Metrics
	log     *log.Entry
}

// NewRunner validates cfg. logger and metrics may be nil.
func NewRunner(cfg Config, logger *log.Logger, metrics *Metrics) (*Runner, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	runID, err := uuid.GenerateUUID()
	if err != nil {
		return nil, errors.Wrap(err, "harness: generating run id")
	}
	return &Runner{
		runID:   runID,
		cfg:     cfg,
		metrics: metrics,
		log:     logger.WithField("run", runID),
	}, nil
}

// RunID identifies the run in logs and in the summary.
func (r *Runner) RunID() string {
	return r.runID
}

type namedEngine struct {
	name   string
	engine lookup.Engine
}

func (r *Runner) buildEngines() ([]namedEngine, error) {
	engines := []namedEngine{
		{name: EngineHashmap, engine: lookup.NewPrefixTable()},
		{name: EngineTrie, engine: lookup.NewPrefixTrie()},
	}
	for _, ne := range engines {
		r.log.WithField("engine", ne.name).Info("Building forwarding table")
		if err := LoadRoutes(ne.engine, r.cfg.RouteFile); err != nil {
			return nil, errors.Wrapf(err, "harness: %s", ne.name)
		}
	}

	if r.cfg.CacheSize > 0 {
		cached, err := lookup.NewCachedEngine(engines[1].engine, r.cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		engines = append(engines, namedEngine{name: EngineCachedTrie, engine: cached})
	}
	return engines, nil
}

// Run executes the comparison. Errors are setup failures, such as an
// unreadable input or an unwritable report; disagreement between engines
// is reported in the Summary.
func (r *Runner) Run() (*Summary, error) {
	addresses, err := ReadLines(r.cfg.QueryFile)
	if err != nil {
		return nil, err
	}
	queries, err := EncodeQueries(addresses)
	if err != nil {
		return nil, errors.Wrapf(err, "harness: reading %s", r.cfg.QueryFile)
	}

	engines, err := r.buildEngines()
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: r.RunID(), Consistent: true, FirstDiff: -1}
	for _, ne := range engines {
		es, err := r.runEngine(ne, queries)
		if err != nil {
			return nil, err
		}
		summary.Engines = append(summary.Engines, es)
	}

	reference := summary.Engines[0]
	for _, es := range summary.Engines[1:] {
		ok, first := Consistent(reference.Results, es.Results)
		if ok {
			continue
		}
		summary.Consistent = false
		summary.FirstDiff = first
		r.log.WithFields(log.Fields{
			"engine":    es.Name,
			"reference": reference.Name,
			"line":      first + 1,
		}).Warn("Results are not the same")
		break
	}
	if summary.Consistent {
		r.log.Info("Results of all engines are the same")
	}
	return summary, nil
}

func (r *Runner) runEngine(ne namedEngine, queries []Query) (EngineSummary, error) {
	logger := r.log.WithField("engine", ne.name)

	logger.WithField("iterations", r.cfg.Iterations).Info("Running lookups")
	elapsed := Benchmark(ne.engine, queries, r.cfg.Iterations)
	logger.WithField("elapsed", elapsed).Info("Lookups finished")

	results := Run(ne.engine, queries)
	path := filepath.Join(r.cfg.OutDir, reportFileName(ne.name))
	logger.WithField("path", path).Info("Writing results")
	if err := writeReportFile(path, results); err != nil {
		return EngineSummary{}, err
	}

	r.metrics.observeRoutes(ne.name, ne.engine.Len())
	r.metrics.observeBenchmark(ne.name, elapsed)
	r.metrics.observeResults(ne.name, results)

	return EngineSummary{
		Name:       ne.name,
		Routes:     ne.engine.Len(),
		Elapsed:    elapsed,
		ReportPath: path,
		Results:    results,
	}, nil
}

func reportFileName(engine string) string {
	return "result_" + engine + ".txt"
}

func writeReportFile(path string, results []Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "harness: can't create output file")
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = errors.Wrapf(cerr, "harness: closing %s", path)
		}
	}()
	return WriteReport(file, results)
}
