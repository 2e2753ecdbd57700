package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-factory/internal/observability"
	"github.com/jonathan/content-factory/internal/policy"
)

var validateBrandCmd = &cobra.Command{
	Use:   "validate-brand",
	Short: "Validate a brand profile YAML",
	Long:  "Loads a brand profile with strict YAML decoding and checks its structural invariants. Cross-request checks belong to validate-request.",
	RunE:  runValidateBrand,
}

var (
	validateBrandPath    string
	validateBrandVerbose bool
)

func init() {
	validateBrandCmd.Flags().StringVar(&validateBrandPath, "brand", "", "Path to brand profile YAML (required)")
	validateBrandCmd.Flags().BoolVarP(&validateBrandVerbose, "verbose", "v", false, "Print a profile summary")

	if err := validateBrandCmd.MarkFlagRequired("brand"); err != nil {
		panic(fmt.Sprintf("failed to mark brand flag as required: %v", err))
	}

	rootCmd.AddCommand(validateBrandCmd)
}

func runValidateBrand(_ *cobra.Command, _ []string) error {
	brand, err := policy.LoadBrandProfile(validateBrandPath)
	if err != nil {
		return err
	}

	if validateBrandVerbose {
		observability.NewPrinter(os.Stdout).PrintBrandProfile(brand)
	}

	fmt.Fprintf(os.Stdout, "OK: brand file valid: %s\n", validateBrandPath)
	return nil
}
