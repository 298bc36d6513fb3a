// Package main generates CLI reference documentation from the ebi command tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/devyassinepro/ebay-importer/cmd/ebi/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, *output); err != nil {
		log.Fatalf("generating docs: %v", err)
	}

	if err := writeIndex(root, *output); err != nil {
		log.Fatalf("writing index: %v", err)
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

// writeIndex emits a README.md linking every generated command page so the
// docs directory is browsable on its own.
func writeIndex(root *cobra.Command, dir string) error {
	var b strings.Builder
	b.WriteString("# ebi CLI reference\n\n")
	b.WriteString(root.Short + "\n\n")
	b.WriteString("## Commands\n\n")
	writeCommandLinks(&b, root, "")

	return os.WriteFile(filepath.Join(dir, "README.md"), []byte(b.String()), 0o600)
}

func writeCommandLinks(b *strings.Builder, c *cobra.Command, indent string) {
	page := strings.ReplaceAll(c.CommandPath(), " ", "_") + ".md"
	fmt.Fprintf(b, "%s- [%s](%s) - %s\n", indent, c.CommandPath(), page, c.Short)

	for _, sub := range c.Commands() {
		if !sub.IsAvailableCommand() || sub.IsAdditionalHelpTopicCommand() {
			continue
		}
		writeCommandLinks(b, sub, indent+"  ")
	}
}
