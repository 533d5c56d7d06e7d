// SPDX-License-Identifier: MIT

// Command ntwrk classifies pitch-class sets and builds pitch, rhythm and
// timbre networks as node/edge tables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
