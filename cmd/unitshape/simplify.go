// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/unitshape/shape"
	"github.com/katalvlaran/unitshape/simplify"
)

// simplifyRow is one line of simplify output.
type simplifyRow struct {
	Input     string `yaml:"input"`
	Canonical string `yaml:"canonical"`
	Script    string `yaml:"script"`
}

func newSimplifyCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "simplify SHAPE...",
		Short: "Print the canonical form and rewrite script of each shape",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be >= 1, got %d", jobs)
			}
			shapes := make([]shape.Shape, len(args))
			for i, arg := range args {
				s, err := shape.Parse(arg)
				if err != nil {
					return err
				}
				shapes[i] = s
			}

			results, err := simplify.Batch(cmd.Context(), shapes,
				simplify.WithLogger(a.logger),
				simplify.WithConcurrency(jobs))
			if err != nil {
				return err
			}
			a.logger.Debug("simplified", zap.Int("shapes", len(results)))

			rows := make([]simplifyRow, len(results))
			for i, res := range results {
				rows[i] = simplifyRow{
					Input:     shapes[i].String(),
					Canonical: res.Canonical.String(),
					Script:    res.Script.String(),
				}
			}

			return a.print(cmd, rows, func() {
				for _, r := range rows {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.Input, r.Canonical, r.Script)
				}
			})
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Shapes simplified in parallel")

	return cmd
}

// print writes v as YAML under --output yaml and calls text otherwise.
func (a *app) print(cmd *cobra.Command, v any, text func()) error {
	if a.output != outputYAML {
		text()
		return nil
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
