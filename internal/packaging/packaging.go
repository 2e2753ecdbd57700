// Package packaging writes Content Package bundles: a versioned manifest
// plus the post markdown, laid out for downstream publishing systems.
package packaging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ManifestVersion is the current Content Package manifest version.
const ManifestVersion = "1"

// PackagesRelDir is where packages land, relative to the repository root.
const PackagesRelDir = "packages"

// Paths locates one written Content Package.
type Paths struct {
	PackageDir   string
	ManifestPath string
	PostPath     string
}

// ManifestOutput is one output entry in the package manifest.
type ManifestOutput struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// Manifest is the Content Package manifest document.
type Manifest struct {
	Version     string           `json:"version"`
	BrandID     string           `json:"brand_id"`
	RunID       string           `json:"run_id"`
	PublishDate string           `json:"publish_date"`
	Slug        string           `json:"slug"`
	Outputs     []ManifestOutput `json:"outputs"`
}

var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases text and collapses every non-alphanumeric run into a
// single hyphen. An empty result falls back to "post".
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlugPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "post"
	}
	return s
}

// WriteContentPackage writes a Content Package under
// {baseDir}/packages/{brandID}/{runID}/: manifest.json plus post.md.
// slugSource is slugified into the manifest slug.
func WriteContentPackage(baseDir, brandID, runID string, publishDate time.Time, slugSource, postMarkdown string) (*Paths, error) {
	packageDir := filepath.Join(baseDir, PackagesRelDir, brandID, runID)
	if err := os.MkdirAll(packageDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create package directory: %w", err)
	}

	manifest := Manifest{
		Version:     ManifestVersion,
		BrandID:     brandID,
		RunID:       runID,
		PublishDate: publishDate.Format("2006-01-02"),
		Slug:        Slugify(slugSource),
		Outputs: []ManifestOutput{
			{Type: "post", Path: "post.md"},
		},
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal package manifest: %w", err)
	}

	manifestPath := filepath.Join(packageDir, "manifest.json")
	if err := os.WriteFile(manifestPath, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("failed to write package manifest: %w", err)
	}

	postPath := filepath.Join(packageDir, "post.md")
	post := strings.TrimRight(postMarkdown, " \t\r\n") + "\n"
	if err := os.WriteFile(postPath, []byte(post), 0644); err != nil {
		return nil, fmt.Errorf("failed to write package post: %w", err)
	}

	return &Paths{
		PackageDir:   packageDir,
		ManifestPath: manifestPath,
		PostPath:     postPath,
	}, nil
}
