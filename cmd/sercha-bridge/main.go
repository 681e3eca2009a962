// Package main provides the entry point for the sercha-bridge CLI.
package main

import (
	"os"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
