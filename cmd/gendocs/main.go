// Package main writes the markdown CLI reference for charthub.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"

	"github.com/kanzi/charthub/internal/cmd"
)

func main() {
	outputDir := "./docs/cli-reference"
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	cmd.RootCmd.DisableAutoGenTag = true

	if err := doc.GenMarkdownTreeCustom(cmd.RootCmd, outputDir, func(string) string { return "" }, linkHandler); err != nil {
		log.Fatalf("Failed to generate documentation: %v", err)
	}

	if err := writeIndex(outputDir, cmd.RootCmd); err != nil {
		log.Fatalf("Failed to generate index: %v", err)
	}

	fmt.Printf("Documentation generated in %s\n", outputDir)
}

// linkHandler keeps links relative for mkdocs
func linkHandler(name string) string {
	return strings.TrimSuffix(name, ".md") + ".md"
}

// writeIndex lists every visible command with its short description
func writeIndex(outputDir string, root *cobra.Command) error {
	var b bytes.Buffer

	b.WriteString("# CLI Reference\n\n")
	b.WriteString("Generated from the charthub command tree.\n\n")
	b.WriteString("## Commands\n\n")
	b.WriteString("| Command | Description |\n")
	b.WriteString("|---------|-------------|\n")
	fmt.Fprintf(&b, "| [%s](%s.md) | Root command and global flags |\n", root.Name(), root.Name())
	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		path := c.CommandPath()
		file := strings.ReplaceAll(path, " ", "_")
		fmt.Fprintf(&b, "| [%s](%s.md) | %s |\n", path, file, c.Short)
	}

	b.WriteString("\n## Global Flags\n\n")
	b.WriteString("| Flag | Description |\n")
	b.WriteString("|------|-------------|\n")
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", name, f.Usage)
	})

	return os.WriteFile(filepath.Join(outputDir, "index.md"), b.Bytes(), 0644)
}
