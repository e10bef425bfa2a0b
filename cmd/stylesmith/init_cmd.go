package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylesmith.yaml config file",
	Long:  `Create a .stylesmith.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylesmith.yaml"); err == nil && !force {
			return fmt.Errorf(".stylesmith.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylesmith.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylesmith.yaml")
		return nil
	},
}

const defaultConfig = `# stylesmith configuration
# Docs: https://github.com/stylesmith/stylesmith

# Shared settings
verbose: false
color: false

# Analysis settings
analyze:
  include:
    - "**/*.html"
  out: styleguide
  format: summary          # summary | json | markdown | css | html
  write: false             # write styleguide.json, STYLEGUIDE.md, tokens.css, preview.html
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
