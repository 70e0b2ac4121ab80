// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mmlc v%s (%s, %s)\n", Version, GitCommit, runtime.Version())
		},
	}
}
