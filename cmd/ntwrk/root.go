// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ntwrk/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out    io.Writer
	logger *zap.Logger
	cfg    *config.Config

	verbose     bool
	configPath  string
	timeout     time.Duration
	metricsFile string

	// overrides, applied only when the flag is set
	modulus  int
	metric   string
	low      float64
	high     float64
	prob     float64
	seed     int64
	workers  int
	weight   string
	fullScan bool
	format   string
	outDir   string
	sqlite   string
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "ntwrk",
		Short: "Pitch-class set and rhythm-cell networks",
		Long: `ntwrk reduces pitch-class sets to normal order, prime form, interval
vector and Forte class, measures minimal voice-leading distances, and builds
weighted node/edge tables from collections of sets, rhythm cells or audio
feature vectors.

Tables are written as nodes.csv/edges.csv or into a SQLite database.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "Config file (default: $NTWRK_CONFIG or ./ntwrk.yaml)")
	pf.DurationVar(&a.timeout, "timeout", 10*time.Minute, "Operation timeout")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "Write build metrics in Prometheus text format to this file")
	pf.IntVarP(&a.modulus, "modulus", "m", 12, "Modulus of the residue space")
	pf.StringVar(&a.metric, "metric", "euclidean", "Distance metric: euclidean, sqeuclidean, cityblock, chebyshev, dtw")
	pf.Float64Var(&a.low, "low", 0.1, "Lower edge threshold (exclusive)")
	pf.Float64Var(&a.high, "high", 10, "Upper edge threshold (exclusive)")
	pf.Float64VarP(&a.prob, "prob", "p", 1, "Edge retention probability in (0,1]")
	pf.Int64Var(&a.seed, "seed", 0, "Retention seed (0 = fixed default)")
	pf.IntVarP(&a.workers, "workers", "w", 1, "Pairwise workers")
	pf.StringVar(&a.weight, "weight", "", "Weight transform: raw, inverse, offset")
	pf.BoolVar(&a.fullScan, "full-scan", false, "Scan both directions of every pair")
	pf.StringVar(&a.format, "format", "csv", "Output format: csv or sqlite")
	pf.StringVarP(&a.outDir, "out", "o", ".", "Output directory")
	pf.StringVar(&a.sqlite, "sqlite", "", "SQLite database path (format=sqlite)")

	root.AddCommand(
		a.pcsCmd(),
		a.leadCmd(),
		a.leadNetworkCmd(),
		a.pcsNetworkCmd(),
		a.sequenceNetworkCmd(),
		a.rhythmNetworkCmd(),
		a.timbralNetworkCmd(),
	)

	return root
}

// setup builds the logger and the effective configuration.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.logger == nil {
		zcfg := zap.NewProductionConfig()
		if a.verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.configPath != "" {
		cfg, path, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}
	if path != "" {
		a.logger.Debug("config loaded", zap.String("path", path))
	}

	a.applyOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// applyOverrides copies explicitly set flags over the loaded config.
func (a *app) applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("modulus") {
		cfg.PCS.Modulus = a.modulus
	}
	if f.Changed("metric") {
		cfg.Distance.Metric = a.metric
	}
	if f.Changed("low") {
		cfg.Network.Low = a.low
	}
	if f.Changed("high") {
		cfg.Network.High = a.high
	}
	if f.Changed("prob") {
		cfg.Network.Probability = a.prob
	}
	if f.Changed("seed") {
		cfg.Network.Seed = a.seed
	}
	if f.Changed("workers") {
		cfg.Network.Workers = a.workers
	}
	if f.Changed("weight") {
		cfg.Network.Weight = a.weight
	}
	if f.Changed("full-scan") {
		cfg.Network.FullScan = a.fullScan
	}
	if f.Changed("format") {
		cfg.Output.Format = a.format
	}
	if f.Changed("out") {
		cfg.Output.Dir = a.outDir
	}
	if f.Changed("sqlite") {
		cfg.Output.SQLitePath = a.sqlite
	}
	if cfg.Output.Format == config.FormatSQLite && cfg.Output.SQLitePath == "" {
		cfg.Output.SQLitePath = filepath.Join(cfg.Output.Dir, "ntwrk.db")
	}
}
