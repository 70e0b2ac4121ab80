// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/golangee/mathml"
	"github.com/golangee/mathml/config"
	"github.com/golangee/mathml/encoder"
	"github.com/golangee/mathml/notation"
	"github.com/spf13/cobra"
)

func newRenderCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var flags config.Config

	renderCmd := &cobra.Command{
		Use:   "render FORMULA...",
		Short: "Renders each formula as MathML, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Flags win over the config file.
			if cmd.Flags().Changed("display") {
				cfg.Display = flags.Display
			}

			if cmd.Flags().Changed("target") {
				cfg.Target = flags.Target
			}

			if cmd.Flags().Changed("indent") {
				cfg.Indent = flags.Indent
			}

			if cmd.Flags().Changed("format") {
				cfg.Format = flags.Format
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			for i, src := range args {
				n, err := notation.Parse(fmt.Sprintf("formula %d", i+1), src)
				if err != nil {
					return err
				}

				if err := render(cmd.OutOrStdout(), n, cfg); err != nil {
					return err
				}
			}

			return nil
		},
	}

	renderCmd.Flags().StringVar(&flags.Display, "display", "", "wrap in a <math> root: block or inline")
	renderCmd.Flags().StringVar(&flags.Target, "target", "", "MathML version, e.g. v3 or v4")
	renderCmd.Flags().StringVar(&flags.Indent, "indent", "", "indentation per nesting level")
	renderCmd.Flags().StringVar(&flags.Format, "format", config.FormatXML, "output format: xml or json")

	return renderCmd
}

func render(w io.Writer, n mathml.Node, cfg config.Config) error {
	if cfg.Format == config.FormatJSON {
		tree, err := mathml.ToTree(n, cfg.Options()...)
		if err != nil {
			return err
		}

		return encoder.NewJSONEncoder(w).Encode(tree)
	}

	if err := mathml.Encode(w, n, cfg.Options()...); err != nil {
		return err
	}

	// Indented output already ends with a newline.
	if cfg.Indent == "" {
		_, err := fmt.Fprintln(w)
		return err
	}

	return nil
}
