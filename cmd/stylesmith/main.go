// Package main provides the stylesmith CLI tool for extracting design
// tokens from rendered HTML and synthesizing style guides.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
