// Package main is the entry point for the ebi CLI client.
package main

import "github.com/devyassinepro/ebay-importer/cmd/ebi/cmd"

func main() {
	cmd.Execute()
}
