// Package main is the entry point for the pricecalc CLI.
package main

import (
	"os"

	"pricecalc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
