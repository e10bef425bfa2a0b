package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stylesmith/stylesmith"
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze [patterns...]",
	Aliases: []string{"an"},
	Short:   "Extract design tokens and synthesize a style guide",
	Long: `Analyze 1 to 5 rendered HTML documents and merge the extracted
colors, typography, components and layout patterns into one style guide.

Positional arguments override the configured include patterns.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for documents to analyze")
	f.String("out", "styleguide", "Output directory for --write")
	f.String("format", "summary", "Output format: summary|json|markdown|css|html")
	f.Bool("write", false, "Write styleguide.json, STYLEGUIDE.md, tokens.css and preview.html")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	config := buildAnalyzeConfig()
	if len(args) > 0 {
		config.Include = args
	}

	paths, stats, err := stylesmith.DiscoverInputs(config.Include)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no documents matched %v", config.Include)
	}
	if len(paths) > 5 {
		return fmt.Errorf("%d documents matched, at most 5 are supported; narrow the patterns", len(paths))
	}

	if config.Verbose && !config.Quiet && stats.FilesSkipped > 0 {
		fmt.Fprintf(os.Stderr, "Loaded %d documents (skipped %d non-document/ignored files)\n",
			stats.FilesScanned, stats.FilesSkipped)
	}

	sources, err := stylesmith.LoadSources(paths)
	if err != nil {
		return err
	}

	analyses := stylesmith.AnalyzeAll(sources)

	useColors := stylesmith.ShouldUseColors(config.UseColors)
	if config.Verbose && !config.Quiet {
		reporter := stylesmith.NewReporter(os.Stdout, useColors)
		for _, a := range analyses {
			reporter.PrintAnalysis(a)
		}
	}

	guide, err := stylesmith.Synthesize(analyses)
	if err != nil {
		return err
	}

	if !config.Quiet {
		format := stylesmith.DetermineOutputFormat(config.OutputFormat)
		if err := stylesmith.WriteOutput(os.Stdout, guide, format, useColors); err != nil {
			return err
		}
	}

	if config.WriteFiles {
		return writeGuideFiles(guide, config.OutputDir, config.Quiet)
	}
	return nil
}

// writeGuideFiles writes the full artifact set into the output directory.
func writeGuideFiles(guide *stylesmith.StyleGuide, dir string, quiet bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	artifacts := []struct {
		name  string
		write func(*os.File) error
	}{
		{"styleguide.json", func(f *os.File) error { return stylesmith.WriteJSON(f, guide) }},
		{"STYLEGUIDE.md", func(f *os.File) error { return stylesmith.WriteMarkdown(f, guide) }},
		{"tokens.css", func(f *os.File) error { _, err := f.WriteString(guide.CSSVariables); return err }},
		{"preview.html", func(f *os.File) error { _, err := f.WriteString(guide.PreviewHTML); return err }},
	}

	for _, artifact := range artifacts {
		path := filepath.Join(dir, artifact.name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		writeErr := artifact.write(f)
		closeErr := f.Close()
		if writeErr != nil {
			return fmt.Errorf("writing %s: %w", path, writeErr)
		}
		if closeErr != nil {
			return fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}

	if !quiet {
		fmt.Printf("Wrote %d files to %s\n", len(artifacts), dir)
	}
	return nil
}
