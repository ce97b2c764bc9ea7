// SPDX-License-Identifier: MIT

// Command crout solves, inverts and takes determinants of the dense square
// systems described in a YAML file.
//
//	crout solve -f system.yaml
//	crout inverse --cond < system.yaml
//	crout det -f system.yaml --tolerance 1e-12 -v
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
