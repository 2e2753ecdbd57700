package compiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/content-factory/internal/schemas"
	"github.com/jonathan/content-factory/internal/types"
)

// SchemaRelPath is the content artifact JSON Schema location relative to the
// repository root.
const SchemaRelPath = "schemas/content_artifact.schema.json"

// ArtifactPath returns where a run's artifact JSON is written.
func ArtifactPath(baseDir, runID string) string {
	return filepath.Join(baseDir, "outputs", fmt.Sprintf("%s.json", runID))
}

// WriteArtifact persists an artifact to the run's output location. The JSON
// is checked against the artifact schema before writing when the schema file
// is resolvable.
func WriteArtifact(baseDir string, artifact *types.ContentArtifact) (string, error) {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal content artifact: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(SchemaRelPath); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return "", fmt.Errorf("content artifact for run %s is invalid: %w", artifact.RunID, err)
		}
	}

	path := ArtifactPath(baseDir, artifact.RunID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create outputs directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write content artifact %s: %w", path, err)
	}
	return path, nil
}
