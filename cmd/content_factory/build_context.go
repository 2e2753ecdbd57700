package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-factory/internal/brandcontext"
	"github.com/jonathan/content-factory/internal/logger"
	"github.com/jonathan/content-factory/internal/observability"
	"github.com/jonathan/content-factory/internal/policy"
)

var buildContextCmd = &cobra.Command{
	Use:   "build-context",
	Short: "Build and cache the brand context artifact",
	Long:  "Fetches every declared brand source (crawl permissions enforced for URLs), extracts brand signals, and writes the merged context artifact to the brand's cache location.",
	RunE:  runBuildContext,
}

var (
	buildContextBrandPath  string
	buildContextBaseDir    string
	buildContextUseBrowser bool
	buildContextVerbose    bool
)

func init() {
	buildContextCmd.Flags().StringVar(&buildContextBrandPath, "brand", "", "Path to brand profile YAML (required)")
	buildContextCmd.Flags().StringVar(&buildContextBaseDir, "base-dir", ".", "Root directory for the context cache")
	buildContextCmd.Flags().BoolVar(&buildContextUseBrowser, "use-browser", false, "Use headless browser for SPA sources (requires Chrome)")
	buildContextCmd.Flags().BoolVarP(&buildContextVerbose, "verbose", "v", false, "Print a context summary")

	if err := buildContextCmd.MarkFlagRequired("brand"); err != nil {
		panic(fmt.Sprintf("failed to mark brand flag as required: %v", err))
	}

	rootCmd.AddCommand(buildContextCmd)
}

func runBuildContext(_ *cobra.Command, _ []string) error {
	brand, err := policy.LoadBrandProfile(buildContextBrandPath)
	if err != nil {
		return err
	}

	log := logger.FromEnv()
	if buildContextVerbose {
		log.SetLevel("debug")
	}

	opts := brandcontext.DefaultOptions()
	opts.BaseDir = filepath.Dir(buildContextBrandPath)
	opts.UseBrowser = buildContextUseBrowser
	opts.Log = log

	artifact, err := brandcontext.Build(context.Background(), brand, opts)
	if err != nil {
		return err
	}

	path, err := brandcontext.Write(buildContextBaseDir, artifact)
	if err != nil {
		return err
	}

	if buildContextVerbose {
		observability.NewPrinter(os.Stdout).PrintContextSummary(artifact)
	}

	fmt.Fprintf(os.Stdout, "Wrote brand context artifact: %s\n", path)
	return nil
}
