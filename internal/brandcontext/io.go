// Package brandcontext builds and caches per-brand signal context.
package brandcontext

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/content-factory/internal/schemas"
	"github.com/jonathan/content-factory/internal/types"
)

// SchemaRelPath is the brand context JSON Schema location relative to the
// repository root.
const SchemaRelPath = "schemas/brand_context.schema.json"

// CachePath returns the deterministic cache location for a brand id.
func CachePath(baseDir, brandID string) string {
	return filepath.Join(baseDir, "artifacts", fmt.Sprintf("%s.json", brandID))
}

// Write persists a context artifact to the brand's cache location.
func Write(baseDir string, artifact *types.BrandContextArtifact) (string, error) {
	path := CachePath(baseDir, artifact.BrandID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal brand context artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write brand context artifact %s: %w", path, err)
	}
	return path, nil
}

// Load reads a brand's cached context artifact. Returns *NotFoundError when
// no cache exists. The cached JSON is checked against the brand context
// schema when the schema file is resolvable.
func Load(baseDir, brandID string) (*types.BrandContextArtifact, error) {
	path := CachePath(baseDir, brandID)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{BrandID: brandID, Path: path}
		}
		return nil, fmt.Errorf("failed to read brand context artifact %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(SchemaRelPath); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("cached brand context for %s is invalid: %w", brandID, err)
		}
	}

	var artifact types.BrandContextArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse brand context artifact %s: %w", path, err)
	}
	if artifact.BrandID != brandID {
		return nil, fmt.Errorf("brand context artifact %s belongs to brand %s, expected %s", path, artifact.BrandID, brandID)
	}
	return &artifact, nil
}
