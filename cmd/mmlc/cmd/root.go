// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/golangee/mathml/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the mmlc command with all of its sub commands.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "mmlc",
		Short: "mmlc renders formulas as MathML",
		Long: `mmlc renders formulas written in plain arithmetic notation as presentation MathML.

Example:
  mmlc render --display block "a^2 + 2*a*b + b^2"`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")

	loadConfig := func() (config.Config, error) {
		if cfgFile == "" {
			return config.Default(), nil
		}

		return config.Load(cfgFile)
	}

	rootCmd.AddCommand(newRenderCmd(loadConfig))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
