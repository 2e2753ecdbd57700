package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/content-factory/internal/types"
)

// OutputsRelDir is where deliveries land, relative to the repository root.
const OutputsRelDir = "outputs"

// RenderForRequest dispatches to the adapter serving the request's delivery
// channel.
func RenderForRequest(brand *types.BrandProfile, req *types.ContentRequest, artifact *types.ContentArtifact) (*RenderedDelivery, error) {
	switch req.DeliveryTarget.Channel {
	case types.ChannelBlogArticle:
		return RenderBlog(brand, req, artifact)
	case types.ChannelEmail:
		return RenderEmail(brand, req, artifact)
	case types.ChannelSocialLongform:
		return RenderLinkedIn(req, artifact)
	}
	return nil, &Error{Message: fmt.Sprintf("no adapter implemented for delivery channel %q", req.DeliveryTarget.Channel)}
}

// WriteDelivery persists a rendered delivery under the outputs directory and
// returns the written path.
func WriteDelivery(baseDir string, delivery *RenderedDelivery) (string, error) {
	if strings.Contains(delivery.Filename, string(os.PathSeparator)) {
		return "", &Error{Message: fmt.Sprintf("delivery filename %q must not contain path separators", delivery.Filename)}
	}

	outDir := filepath.Join(baseDir, OutputsRelDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", &Error{Message: "failed to create outputs directory", Cause: err}
	}

	path := filepath.Join(outDir, delivery.Filename)
	if err := os.WriteFile(path, []byte(delivery.Content), 0644); err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to write delivery %s", delivery.Filename), Cause: err}
	}
	return path, nil
}
