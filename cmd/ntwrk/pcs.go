// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ntwrk/leading"
	"github.com/katalvlaran/ntwrk/pcset"
)

func (a *app) pcsCmd() *cobra.Command {
	var transpose int
	cmd := &cobra.Command{
		Use:   "pcs <pc>...",
		Short: "Normal order, prime form, interval vector and Forte class of a set",
		Example: `  ntwrk pcs 0 4 7
  ntwrk pcs -m 19 0 5 11`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := parseInts(args)
			if err != nil {
				return err
			}
			s, err := pcset.New(elems, pcset.WithModulus(a.cfg.PCS.Modulus), pcset.WithTransposition(transpose))
			if err != nil {
				return err
			}

			forte := "-"
			label, err := s.ForteClass()
			switch {
			case err == nil:
				forte = label
			case errors.Is(err, pcset.ErrForteNotFound), errors.Is(err, pcset.ErrForteModulus):
				a.logger.Warn("forte class unavailable", zap.String("set", s.String()), zap.Error(err))
			default:
				return err
			}

			fmt.Fprintf(a.out, "normal: %v\n", s.NormalOrder())
			fmt.Fprintf(a.out, "prime:  %v\n", s.PrimeForm())
			fmt.Fprintf(a.out, "icv:    %v\n", s.IntervalVector())
			fmt.Fprintf(a.out, "forte:  %s\n", forte)
			return nil
		},
	}
	cmd.Flags().IntVarP(&transpose, "transpose", "t", 0, "Transpose the set before classifying")

	return cmd
}

func (a *app) leadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "lead <a> <b>",
		Short:   "Minimal voice leading between two pitch vectors",
		Example: `  ntwrk lead 0,4,7 0,3,8`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseVector(args[0])
			if err != nil {
				return err
			}
			y, err := parseVector(args[1])
			if err != nil {
				return err
			}
			metric, err := leading.ParseMetric(a.cfg.Distance.Metric)
			if err != nil {
				return err
			}
			res, err := leading.MinimalDistance(x, y,
				leading.WithModulus(a.cfg.PCS.Modulus), leading.WithMetric(metric))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "cost:    %g\n", res.Cost)
			fmt.Fprintf(a.out, "leading: %v\n", res.Leading)
			return nil
		},
	}
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", f)
		}
		out = append(out, v)
	}

	return out, nil
}

// parseVector reads "0,4,7" or "[0,4,7]".
func parseVector(s string) ([]int, error) {
	return parseInts(strings.Split(strings.Trim(s, "[] "), ","))
}
