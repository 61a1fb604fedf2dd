package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/tessera/internal/infrastructure/config"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files

By default man pages go to ~/.local/share/man/man1/ so 'man tessera' finds
them; run 'mandb' if it does not.

Examples:
  tessera gen-docs                      # Install man pages
  tessera gen-docs --format markdown    # Markdown into ./docs
  tessera gen-docs --output ./man       # Man pages into ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	ext := ""
	switch genDocsFormat {
	case "man":
		ext = ".1"
		if outputDir == "" {
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		}
	case "markdown":
		ext = ".md"
		if outputDir == "" {
			outputDir = "./docs"
		}
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output: no generation timestamp footer.
	rootCmd.DisableAutoGenTag = true

	if genDocsFormat == "man" {
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "TESSERA",
			Section: "1",
			Source:  "tessera " + buildInfo.Version,
			Manual:  "Tessera Manual",
			Date:    &now,
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
	} else if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s docs in %s\n", genDocsFormat, outputDir)
	listGenerated(out, outputDir, ext)
	return nil
}

func listGenerated(out io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
}
