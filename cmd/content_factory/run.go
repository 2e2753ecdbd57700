package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/content-factory/internal/adapters"
	"github.com/jonathan/content-factory/internal/brandcontext"
	"github.com/jonathan/content-factory/internal/compiler"
	"github.com/jonathan/content-factory/internal/config"
	"github.com/jonathan/content-factory/internal/editorial"
	"github.com/jonathan/content-factory/internal/generation"
	"github.com/jonathan/content-factory/internal/logger"
	"github.com/jonathan/content-factory/internal/observability"
	"github.com/jonathan/content-factory/internal/packaging"
	"github.com/jonathan/content-factory/internal/policy"
	"github.com/jonathan/content-factory/internal/types"
	"github.com/jonathan/content-factory/internal/validation"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full content pipeline end-to-end",
	Long: `Orchestrates the entire content run: load + validate documents -> policy validation -> brand context -> compile -> generate -> editorial -> artifact validation -> channel QA -> write artifact + delivery.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath            string
	runBrand                 string
	runRequest               string
	runMatrix                string
	runBaseDir               string
	runRunID                 string
	runAPIKey                string
	runUseBrowser            bool
	runBuildContextIfMissing bool
	runWritePackage          bool
	runVerbose               bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVar(&runBrand, "brand", "", "Path to brand profile YAML")
	runCommand.Flags().StringVar(&runRequest, "request", "", "Path to content request YAML")
	runCommand.Flags().StringVar(&runMatrix, "matrix", "", "Path to illegal combination matrix YAML (defaults to schemas/illegal_matrix.yaml)")
	runCommand.Flags().StringVar(&runBaseDir, "base-dir", "", "Root for outputs, packages, and the context cache (defaults to current directory)")
	runCommand.Flags().StringVar(&runRunID, "run-id", "", "Run identifier (defaults to a generated UUID)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA sources (requires Chrome)")
	runCommand.Flags().BoolVar(&runBuildContextIfMissing, "build-context-if-missing", false, "Build the brand context artifact when no cache exists")
	runCommand.Flags().BoolVar(&runWritePackage, "write-package", false, "Also write a Content Package for blog deliveries")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key for the editorial pass (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if runVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("brand") {
		cfg.Brand = runBrand
	}
	if cmd.Flags().Changed("request") {
		cfg.Request = runRequest
	}
	if cmd.Flags().Changed("matrix") {
		cfg.Matrix = runMatrix
	}
	if cmd.Flags().Changed("base-dir") {
		cfg.BaseDir = runBaseDir
	}
	if cmd.Flags().Changed("run-id") {
		cfg.RunID = runRunID
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("build-context-if-missing") {
		cfg.BuildContextIfMissing = runBuildContextIfMissing
	}
	if cmd.Flags().Changed("write-package") {
		cfg.WritePackage = runWritePackage
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Fill remaining defaults
	if cfg.Brand == "" || cfg.Request == "" {
		return fmt.Errorf("both --brand and --request are required (via flags or config file)")
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = "."
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	log := logger.FromEnv()
	if cfg.Verbose {
		log.SetLevel("debug")
	}
	printer := observability.NewPrinter(os.Stdout)

	// Step 4: Load and validate documents
	brand, err := policy.LoadBrandProfile(cfg.Brand)
	if err != nil {
		return err
	}
	req, err := policy.LoadContentRequest(cfg.Request)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintBrandProfile(brand)
		printer.PrintRequest(req)
	}

	// Step 5: Policy validation against brand and matrix
	m, err := loadMatrix(cfg.Matrix)
	if err != nil {
		return err
	}
	if err := policy.ValidateRequest(brand, req, m); err != nil {
		var verr *policy.ViolationError
		if cfg.Verbose && errors.As(err, &verr) {
			printer.PrintViolations(&types.Violations{Violations: verr.Violations})
		}
		return err
	}

	// Step 6: Load or build the brand context
	brandContext, err := loadOrBuildContext(ctx, brand, &cfg, log)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintContextSummary(brandContext)
	}

	// Step 7: Compile the skeleton artifact
	artifact := compiler.Compile(brand, req, brandContext, cfg.RunID)

	// Step 8: Deterministic generation
	path, err := generation.Fill(brand, req, artifact)
	if err != nil {
		return err
	}
	log.Debug("generation complete", "path", string(path), "run_id", cfg.RunID)

	// Step 9: Optional editorial pass; never blocks the run
	applyEditorial(ctx, &cfg, brand, req, artifact, log)

	// Step 10: Artifact validation + channel QA
	if err := validation.ValidateArtifact(brand, req, artifact); err != nil {
		return err
	}
	if err := validation.ValidateChannel(brand, req, artifact); err != nil {
		return err
	}

	// Step 11: Write artifact JSON and delivery output
	artifactPath, err := compiler.WriteArtifact(cfg.BaseDir, artifact)
	if err != nil {
		return err
	}
	delivery, err := adapters.RenderForRequest(brand, req, artifact)
	if err != nil {
		return err
	}
	deliveryPath, err := adapters.WriteDelivery(cfg.BaseDir, delivery)
	if err != nil {
		return err
	}

	outputs := []string{artifactPath, deliveryPath}

	// Step 12: Optional Content Package
	if cfg.WritePackage {
		pkg, err := writePackage(brand, req, artifact, delivery, &cfg)
		if err != nil {
			return err
		}
		outputs = append(outputs, pkg.ManifestPath, pkg.PostPath)
		fmt.Fprintf(os.Stdout, "Wrote Content Package: %s\n", pkg.PackageDir)
	}

	if cfg.Verbose {
		printer.PrintDeliverySummary(cfg.RunID, outputs)
	}

	fmt.Fprintf(os.Stdout, "Brand: %s\n", cfg.Brand)
	fmt.Fprintf(os.Stdout, "Request: %s\n", cfg.Request)
	fmt.Fprintf(os.Stdout, "Wrote content artifact: %s\n", artifactPath)
	fmt.Fprintf(os.Stdout, "Wrote delivery output: %s\n", deliveryPath)
	return nil
}

// loadOrBuildContext returns the brand's cached context artifact, building
// and caching it first when allowed.
func loadOrBuildContext(ctx context.Context, brand *types.BrandProfile, cfg *config.Config, log *logger.Logger) (*types.BrandContextArtifact, error) {
	artifact, err := brandcontext.Load(cfg.BaseDir, brand.BrandID)
	if err == nil {
		return artifact, nil
	}

	var notFound *brandcontext.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}
	if !cfg.BuildContextIfMissing {
		return nil, fmt.Errorf("brand context artifact not found: %s (run `content_factory build-context --brand ...` first, or pass --build-context-if-missing)",
			brandcontext.CachePath(cfg.BaseDir, brand.BrandID))
	}

	opts := brandcontext.DefaultOptions()
	opts.BaseDir = filepath.Dir(cfg.Brand)
	opts.UseBrowser = cfg.UseBrowser
	opts.Log = log

	artifact, err = brandcontext.Build(ctx, brand, opts)
	if err != nil {
		return nil, err
	}
	if _, err := brandcontext.Write(cfg.BaseDir, artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

// applyEditorial runs the copy-edit pass when an API key is available.
// Failures are logged and swallowed.
func applyEditorial(ctx context.Context, cfg *config.Config, brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact, log *logger.Logger) {
	if cfg.APIKey == "" {
		return
	}

	client, err := editorial.NewGeminiClient(ctx, cfg.APIKey, "")
	if err != nil {
		log.Warn("editorial pass skipped", "error", err)
		return
	}
	defer func() { _ = client.Close() }()

	applied, err := editorial.Apply(ctx, client, brand, req, artifact)
	if err != nil {
		log.Warn("editorial pass failed; keeping generated content", "error", err)
		return
	}
	if applied {
		log.Info("editorial pass applied", "run_id", artifact.RunID)
	}
}

// writePackage writes a Content Package for blog deliveries.
func writePackage(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact, delivery *adapters.RenderedDelivery, cfg *config.Config) (*packaging.Paths, error) {
	if req.DeliveryTarget.Channel != types.ChannelBlogArticle {
		return nil, fmt.Errorf("--write-package is currently supported only for blog_article deliveries")
	}

	publishDate, err := req.Publish.Date()
	if err != nil {
		return nil, err
	}

	slugSource := compiler.ExtractTopic(artifact)
	if slugSource == "" {
		slugSource = artifact.RunID
	}

	return packaging.WriteContentPackage(cfg.BaseDir, brand.BrandID, artifact.RunID, publishDate, slugSource, delivery.Content)
}
