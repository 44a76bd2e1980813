// SPDX-License-Identifier: MIT

// Command qwalk decomposes graph Hamiltonians and evaluates continuous-time
// quantum walks on them. See `qwalk --help`.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/qwalk/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "qwalk:", err)
		os.Exit(1)
	}
}
