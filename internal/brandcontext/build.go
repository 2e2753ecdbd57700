// Package brandcontext builds and caches per-brand signal context.
package brandcontext

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/content-factory/internal/fetch"
	"github.com/jonathan/content-factory/internal/logger"
	"github.com/jonathan/content-factory/internal/robots"
	"github.com/jonathan/content-factory/internal/types"
)

// ArtifactVersion is the current brand context artifact format version.
const ArtifactVersion = "1.0"

// Options configures a context build.
type Options struct {
	// UserAgent identifies the fetcher to origin servers and is the agent
	// the robots permission check evaluates.
	UserAgent string

	// BaseDir resolves relative file-source refs.
	BaseDir string

	// UseBrowser enables a headless-browser re-fetch for URL sources whose
	// extracted text is too short to be useful.
	UseBrowser bool

	Timeout time.Duration

	Log *logger.Logger
}

// DefaultOptions returns the default build options.
func DefaultOptions() *Options {
	return &Options{
		UserAgent: fetch.DefaultUserAgent,
		Timeout:   fetch.DefaultTimeout,
	}
}

// Build fetches every declared brand source, extracts signals, and merges
// them into a BrandContextArtifact. URL sources are gated by a per-origin
// crawl-permission check before the fetch. The build either fully succeeds
// or fails with one IngestionError listing every failing source.
func Build(ctx context.Context, brand *types.BrandProfile, opts *Options) (*types.BrandContextArtifact, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.UserAgent == "" {
		opts.UserAgent = fetch.DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = fetch.DefaultTimeout
	}
	log := opts.Log
	if log == nil {
		log = logger.FromEnv()
	}

	var fetched []types.FetchedSource
	var extracted []types.BrandSignals

	for _, src := range brand.BrandSources.Sources {
		record := types.FetchedSource{
			SourceID:  src.SourceID,
			Kind:      string(src.Kind),
			Purpose:   string(src.Purpose),
			Ref:       src.Ref,
			FetchedAt: time.Now().UTC().Format(time.RFC3339),
		}

		var body []byte
		var failure string

		switch src.Kind {
		case types.SourceKindURL:
			body, failure = fetchURLSource(ctx, src, opts, &record, log)
		case types.SourceKindFile:
			body, failure = readFileSource(src, opts, &record)
		default:
			failure = fmt.Sprintf("unknown source kind %q", src.Kind)
		}

		if failure != "" {
			record.OK = false
			record.Error = failure
			fetched = append(fetched, record)
			log.Warn("brand source failed", "source_id", src.SourceID, "reason", failure)
			continue
		}

		sum := sha256.Sum256(body)
		record.OK = true
		record.SHA256 = hex.EncodeToString(sum[:])
		record.BytesLength = len(body)
		fetched = append(fetched, record)

		// Extraction is best-effort and never fails a source; only fetch and
		// permission failures abort the build.
		extracted = append(extracted, ExtractSignals(string(body)))
		log.Debug("brand source ingested", "source_id", src.SourceID, "bytes", len(body))
	}

	var failures []SourceFailure
	for _, s := range fetched {
		if !s.OK {
			failures = append(failures, SourceFailure{SourceID: s.SourceID, Reason: s.Error})
		}
	}
	if len(failures) > 0 {
		return nil, &IngestionError{Failures: failures}
	}

	return &types.BrandContextArtifact{
		ArtifactVersion: ArtifactVersion,
		BrandID:         brand.BrandID,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		FetchUserAgent:  opts.UserAgent,
		Sources:         fetched,
		Signals:         MergeSignals(extracted),
	}, nil
}

// fetchURLSource runs the robots check and the fetch for one URL source.
// Returns the body, or a non-empty failure reason.
func fetchURLSource(ctx context.Context, src types.BrandSource, opts *Options, record *types.FetchedSource, log *logger.Logger) ([]byte, string) {
	allowed, err := robots.Allows(ctx, src.Ref, opts.UserAgent)
	if err != nil {
		return nil, err.Error()
	}
	record.RobotsAllowed = &allowed
	if !allowed {
		return nil, "robots.txt disallows fetching this URL"
	}

	res, err := fetch.URL(ctx, src.Ref, &fetch.Options{
		Timeout:   opts.Timeout,
		UserAgent: opts.UserAgent,
	})
	if err != nil {
		return nil, err.Error()
	}
	record.HTTPStatus = res.StatusCode
	if res.StatusCode >= 400 {
		return nil, fmt.Sprintf("HTTP error status=%d", res.StatusCode)
	}

	body := res.Body

	if opts.UseBrowser {
		text, extractErr := fetch.ExtractMainText(string(body))
		if extractErr == nil && fetch.ShouldUseBrowser(text) {
			log.Info("falling back to headless browser", "source_id", src.SourceID)
			if html, browserErr := fetch.WithBrowser(ctx, src.Ref, opts.Timeout); browserErr == nil {
				body = []byte(html)
			} else {
				log.Warn("browser fallback failed; keeping HTTP body", "source_id", src.SourceID, "error", browserErr)
			}
		}
	}

	return body, ""
}

// readFileSource reads one file source, resolving relative refs against the
// configured base directory.
func readFileSource(src types.BrandSource, opts *Options, record *types.FetchedSource) ([]byte, string) {
	path := src.Ref
	if !filepath.IsAbs(path) && opts.BaseDir != "" {
		path = filepath.Join(opts.BaseDir, path)
	}
	record.Ref = path

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Sprintf("failed to read file source: %v", err)
	}
	return body, ""
}
