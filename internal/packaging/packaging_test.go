package packaging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Home Organization", "home-organization"},
		{"  Kitchen   Essentials  ", "kitchen-essentials"},
		{"What's Next? 2026 Edition!", "what-s-next-2026-edition"},
		{"---", "post"},
		{"", "post"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestWriteContentPackage(t *testing.T) {
	baseDir := t.TempDir()
	publishDate := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	paths, err := WriteContentPackage(baseDir, "acme-living", "run-1", publishDate,
		"Home Organization", "---\ntitle: x\n---\n\nbody text")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(baseDir, PackagesRelDir, "acme-living", "run-1"), paths.PackageDir)
	assert.Equal(t, filepath.Join(paths.PackageDir, "manifest.json"), paths.ManifestPath)
	assert.Equal(t, filepath.Join(paths.PackageDir, "post.md"), paths.PostPath)

	data, err := os.ReadFile(paths.ManifestPath)
	require.NoError(t, err)

	var manifest Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, ManifestVersion, manifest.Version)
	assert.Equal(t, "acme-living", manifest.BrandID)
	assert.Equal(t, "run-1", manifest.RunID)
	assert.Equal(t, "2026-10-01", manifest.PublishDate)
	assert.Equal(t, "home-organization", manifest.Slug)
	require.Len(t, manifest.Outputs, 1)
	assert.Equal(t, ManifestOutput{Type: "post", Path: "post.md"}, manifest.Outputs[0])
}

func TestWriteContentPackage_PostEndsWithSingleNewline(t *testing.T) {
	paths, err := WriteContentPackage(t.TempDir(), "acme-living", "run-1",
		time.Now(), "topic", "body with trailing whitespace \n\n\n")
	require.NoError(t, err)

	post, err := os.ReadFile(paths.PostPath)
	require.NoError(t, err)
	assert.Equal(t, "body with trailing whitespace\n", string(post))
}
