// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/unitshape/convert"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputYAML = "yaml"
)

var errBadOutput = errors.New("unitshape: --output must be text or yaml")

// app holds flag values and the logger shared by every subcommand.
type app struct {
	verbose   bool
	output    string
	tablePath string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "unitshape",
		Short: "Simplify unit shapes, convert values and normalize angles",
		Long: `unitshape works on numbers tagged with unit shapes such as m/s or (m/s)*s.

Shapes are written with * and /, grouped with parentheses; 1 is the
dimensionless shape. Conversions use the built-in table unless --table
points at a YAML declaration file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.output != outputText && a.output != outputYAML {
				return errBadOutput
			}

			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging (traces every rewrite rule)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "Output format: text or yaml")
	root.PersistentFlags().StringVar(&a.tablePath, "table", "", "YAML conversion table (default: built-in table)")

	root.AddCommand(
		newSimplifyCmd(a),
		newConvertCmd(a),
		newNormalizeCmd(a),
		newTableCmd(a),
	)

	return root
}

// table returns the table selected by --table.
func (a *app) table() (*convert.Table, error) {
	if a.tablePath == "" {
		return convert.Standard(), nil
	}
	t, err := convert.LoadTableFile(a.tablePath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded conversion table",
		zap.String("path", a.tablePath),
		zap.Int("declarations", t.Len()))

	return t, nil
}
