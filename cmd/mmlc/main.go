// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/golangee/mathml/cmd/mmlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
