// Package main provides the entry point for the prodmatch CLI.
package main

import (
	"os"

	"github.com/okatru/prodmatch/cmd/prodmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
