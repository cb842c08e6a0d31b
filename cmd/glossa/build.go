package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"glossa/internal/build"
	"glossa/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long:  "Build renders every language's posts, listings, feeds, and SEO files into the output directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		root := filepath.Dir(configPath)
		result, err := build.NewGenerator(cfg, root).Run()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Built %d pages (%d posts, %d system pages) across %d languages in %s\n",
			result.Pages, result.Posts, result.SystemPages, result.Languages, result.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
