// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/unitshape/convert"
	"github.com/katalvlaran/unitshape/shape"
	"github.com/katalvlaran/unitshape/unit"
)

type convertRow struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	In   float64 `yaml:"in"`
	Out  float64 `yaml:"out"`
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between units with direct table declarations",
		Example: `  unitshape convert 1 km m
  unitshape convert 36 km/h m/s`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			from, err := shape.Parse(args[1])
			if err != nil {
				return err
			}
			to, err := shape.Parse(args[2])
			if err != nil {
				return err
			}
			t, err := a.table()
			if err != nil {
				return err
			}

			in := unit.Of(v, from)
			out, err := convert.To(t, in, to)
			if err != nil {
				return err
			}
			a.logger.Debug("converted",
				zap.Stringer("from", in),
				zap.Stringer("to", out))

			row := convertRow{From: from.String(), To: to.String(), In: v, Out: out.Value()}

			return a.print(cmd, row, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", in, out)
			})
		},
	}
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the conversion table in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.table()
			if err != nil {
				return err
			}

			return a.print(cmd, t, func() {
				for _, d := range t.Declarations() {
					fmt.Fprintln(cmd.OutOrStdout(), d)
				}
			})
		},
	}
}
