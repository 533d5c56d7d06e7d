// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ntwrk/internal/config"
	"github.com/katalvlaran/ntwrk/internal/store"
	"github.com/katalvlaran/ntwrk/leading"
	"github.com/katalvlaran/ntwrk/matrix"
	"github.com/katalvlaran/ntwrk/network"
	"github.com/katalvlaran/ntwrk/pcset"
	"github.com/katalvlaran/ntwrk/rhythm"
)

func (a *app) leadNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lead-network <vectors>",
		Short: "Network of minimal voice leadings between pitch vectors",
		Long:  "Reads one pitch vector per line and links every pair whose minimal voice-leading cost lies strictly between --low and --high.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vecs, err := readVectors(args[0])
			if err != nil {
				return err
			}
			opts, err := a.networkOptions()
			if err != nil {
				return err
			}
			return a.build(cmd.Context(), "lead", func(ctx context.Context) (*network.Table, error) {
				return network.PitchLeadingNetwork(ctx, vecs, opts...)
			})
		},
	}
}

func (a *app) pcsNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pcs-network <vectors>",
		Short: "Network of set classes (prime forms) from a list of sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vecs, err := readVectors(args[0])
			if err != nil {
				return err
			}
			sets := make([]*pcset.ResidueSet, len(vecs))
			for i, v := range vecs {
				sets[i], err = pcset.New(v, pcset.WithModulus(a.cfg.PCS.Modulus))
				if err != nil {
					return fmt.Errorf("set %d: %w", i+1, err)
				}
				if _, ferr := sets[i].ForteClass(); ferr != nil {
					a.logger.Debug("forte class unavailable", zap.String("set", sets[i].String()), zap.Error(ferr))
				}
			}
			opts, err := a.networkOptions()
			if err != nil {
				return err
			}
			return a.build(cmd.Context(), "pcs", func(ctx context.Context) (*network.Table, error) {
				return network.PrimeFormNetwork(ctx, sets, opts...)
			})
		},
	}
}

func (a *app) sequenceNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sequence-network <vectors>",
		Short: "Sequential network linking consecutive vectors (orchestration or pitch)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vecs, err := readVectors(args[0])
			if err != nil {
				return err
			}
			opts, err := a.networkOptions()
			if err != nil {
				return err
			}
			return a.build(cmd.Context(), "sequence", func(context.Context) (*network.Table, error) {
				return network.OrchestralNetwork(vecs, opts...)
			})
		},
	}
}

func (a *app) rhythmNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rhythm-network <dictionary.csv>",
		Short: "Network of rhythm cells from a label,cell dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := a.cfg.Rhythm.UnitRat()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			dict, err := store.ReadRhythmDictionary(f,
				rhythm.WithUnit(unit), rhythm.WithResolution(a.cfg.Rhythm.Resolution))
			if err != nil {
				return err
			}
			metric, err := leading.ParseMetric(a.cfg.Distance.Metric)
			if err != nil {
				return err
			}
			opts, err := a.networkOptions()
			if err != nil {
				return err
			}
			return a.build(cmd.Context(), "rhythm", func(ctx context.Context) (*network.Table, error) {
				return network.RhythmNetwork(ctx, dict, metric, opts...)
			})
		},
	}
}

func (a *app) timbralNetworkCmd() *cobra.Command {
	var scaling string
	cmd := &cobra.Command{
		Use:   "timbral-network <features.csv>",
		Short: "Network of sounds from label,feature... rows",
		Long:  "Links sounds whose feature vectors lie within the thresholds. The weight defaults to 1/distance.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			labels, X, err := store.ReadFeatures(f)
			if err != nil {
				return err
			}
			switch scaling {
			case "", "none":
			case "zscore":
				X, _, _, err = matrix.Standardize(X)
			case "minmax":
				X, _, _, err = matrix.MinMax(X)
			default:
				err = fmt.Errorf("unknown scaling %q (none, zscore, minmax)", scaling)
			}
			if err != nil {
				return err
			}
			opts, err := a.networkOptions()
			if err != nil {
				return err
			}
			return a.build(cmd.Context(), "timbral", func(ctx context.Context) (*network.Table, error) {
				return network.TimbralNetwork(ctx, labels, X, opts...)
			})
		},
	}
	cmd.Flags().StringVar(&scaling, "scale", "none", "Feature scaling: none, zscore, minmax")

	return cmd
}

// networkOptions maps the effective configuration onto builder options.
func (a *app) networkOptions() ([]network.Option, error) {
	n := a.cfg.Network
	metric, err := leading.ParseMetric(a.cfg.Distance.Metric)
	if err != nil {
		return nil, err
	}
	opts := []network.Option{
		network.WithThresholds(n.Low, n.High),
		network.WithProbability(n.Probability),
		network.WithWorkers(n.Workers),
		network.WithOffset(n.Offset),
		network.WithModulus(a.cfg.PCS.Modulus),
		network.WithMetric(metric),
		network.WithLogger(a.logger),
	}
	if n.TimeSeed {
		opts = append(opts, network.WithTimeSeed())
	} else {
		opts = append(opts, network.WithSeed(n.Seed))
	}
	if n.FullScan {
		opts = append(opts, network.WithFullScan())
	}
	switch n.Weight {
	case "raw":
		opts = append(opts, network.WithWeight(network.WeightRaw))
	case "inverse":
		opts = append(opts, network.WithWeight(network.WeightInverse))
	case "offset":
		opts = append(opts, network.WithWeight(network.WeightOffset))
	}

	return opts, nil
}

// build runs fn under the configured timeout and writes the table.
func (a *app) build(ctx context.Context, kind string, fn func(context.Context) (*network.Table, error)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	t, err := fn(ctx)
	if err != nil {
		return err
	}

	sink, err := a.openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	id, err := sink.Write(ctx, kind, t)
	if err != nil {
		return err
	}
	a.logger.Info("table written",
		zap.String("kind", kind),
		zap.String("run", id),
		zap.String("format", a.cfg.Output.Format),
		zap.Int("nodes", len(t.Nodes)),
		zap.Int("edges", len(t.Edges)))
	fmt.Fprintf(a.out, "run=%s nodes=%d edges=%d\n", id, len(t.Nodes), len(t.Edges))

	if a.metricsFile != "" {
		if err := prometheus.WriteToTextfile(a.metricsFile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Debug("metrics written", zap.String("path", a.metricsFile))
	}

	return nil
}

func (a *app) openSink() (store.Sink, error) {
	if a.cfg.Output.Format == config.FormatSQLite {
		return store.NewSQLiteSink(a.cfg.Output.SQLitePath)
	}

	return store.NewCSVSink(a.cfg.Output.Dir)
}

func readVectors(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return store.ReadVectors(f)
}
