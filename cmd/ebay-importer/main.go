// Package main is the entry point for the ebay-importer server.
package main

import (
	"os"

	"github.com/devyassinepro/ebay-importer/cmd/ebay-importer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
