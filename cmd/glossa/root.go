package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glossa",
	Short: "A multi-language static blog generator",
	Long:  "Glossa turns a tree of Markdown files into a multi-language static blog with per-language feeds, search indexes, and sitemaps.",
}

func init() {
	rootCmd.PersistentFlags().String("config", "glossa.yaml", "path to config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
