// SPDX-License-Identifier: MIT
// Package: blossom/cmd/blossom
//
// main.go — entry point of the blossom CLI.

// Package main provides the blossom CLI for matching and generating graphs.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/blossom/cmd/blossom/cmd"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
