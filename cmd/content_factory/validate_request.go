package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-factory/internal/matrix"
	"github.com/jonathan/content-factory/internal/policy"
	"github.com/jonathan/content-factory/internal/schemas"
)

// defaultMatrixRelPath is the illegal combination matrix location relative to
// the repository root.
const defaultMatrixRelPath = "schemas/illegal_matrix.yaml"

var validateRequestCmd = &cobra.Command{
	Use:   "validate-request",
	Short: "Validate a content request against a brand",
	Long:  "Loads both documents, then cross-checks the request against the brand's policy and the illegal combination matrix. All violations are reported together.",
	RunE:  runValidateRequest,
}

var (
	validateRequestBrandPath   string
	validateRequestRequestPath string
	validateRequestMatrixPath  string
)

func init() {
	validateRequestCmd.Flags().StringVar(&validateRequestBrandPath, "brand", "", "Path to brand profile YAML (required)")
	validateRequestCmd.Flags().StringVar(&validateRequestRequestPath, "request", "", "Path to content request YAML (required)")
	validateRequestCmd.Flags().StringVar(&validateRequestMatrixPath, "matrix", "", "Path to illegal combination matrix YAML (defaults to schemas/illegal_matrix.yaml)")

	for _, flag := range []string{"brand", "request"} {
		if err := validateRequestCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(validateRequestCmd)
}

// loadMatrix loads the illegal combination matrix from the given path, or
// from the default repository location when the path is empty.
func loadMatrix(path string) (*matrix.Matrix, error) {
	if path == "" {
		path = schemas.ResolveSchemaPath(defaultMatrixRelPath)
		if path == "" {
			return nil, fmt.Errorf("illegal combination matrix not found: %s (pass --matrix)", defaultMatrixRelPath)
		}
	}
	return matrix.Load(path)
}

func runValidateRequest(_ *cobra.Command, _ []string) error {
	brand, err := policy.LoadBrandProfile(validateRequestBrandPath)
	if err != nil {
		return err
	}
	req, err := policy.LoadContentRequest(validateRequestRequestPath)
	if err != nil {
		return err
	}
	m, err := loadMatrix(validateRequestMatrixPath)
	if err != nil {
		return err
	}

	if err := policy.ValidateRequest(brand, req, m); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "OK: request valid against brand: %s\n", validateRequestRequestPath)
	return nil
}
