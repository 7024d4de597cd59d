// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unitshape/angle"
)

type normalizeRow struct {
	Unit string  `yaml:"unit"`
	In   float64 `yaml:"in"`
	Out  float64 `yaml:"out"`
}

func newNormalizeCmd(a *app) *cobra.Command {
	var unitName string

	cmd := &cobra.Command{
		Use:   "normalize VALUE",
		Short: "Map an angle into [-M, M) for its unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			var u angle.Unit
			switch unitName {
			case angle.Degree.Name():
				u = angle.Degree
			case angle.Radian.Name():
				u = angle.Radian
			default:
				return fmt.Errorf("--unit must be %s or %s, got %q", angle.Degree, angle.Radian, unitName)
			}

			out := angle.New(v, u).Normalize()
			row := normalizeRow{Unit: u.Name(), In: v, Out: out.Value()}

			return a.print(cmd, row, func() {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().StringVarP(&unitName, "unit", "u", angle.Degree.Name(), "Angle unit: deg or rad")

	return cmd
}
