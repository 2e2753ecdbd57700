// Package robots provides per-origin crawl-permission checks consulted
// before retrieving any networked brand source.
package robots

import (
	"context"
	"fmt"
	"net/url"

	"github.com/temoto/robotstxt"

	"github.com/jonathan/content-factory/internal/fetch"
)

// Error represents a failure to evaluate an origin's permission file. A
// missing file is not an error; a present-and-unreadable one is.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("robots check failed for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("robots check failed for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Allows reports whether the origin's robots.txt permits the given agent to
// fetch the URL. An absent permission file (404) always permits; a present
// file is evaluated for the exact agent with no override; any other fetch
// outcome is an error.
func Allows(ctx context.Context, rawURL string, userAgent string) (bool, error) {
	robotsURL, err := urlFor(rawURL)
	if err != nil {
		return false, &Error{URL: rawURL, Message: "invalid source URL", Cause: err}
	}

	res, err := fetch.URL(ctx, robotsURL, &fetch.Options{
		Timeout:   fetch.DefaultTimeout,
		UserAgent: userAgent,
	})
	if err != nil {
		return false, &Error{URL: robotsURL, Message: "failed to fetch robots.txt", Cause: err}
	}

	// 404 -> treat as allowed.
	if res.StatusCode == 404 {
		return true, nil
	}
	if res.StatusCode != 200 {
		return false, &Error{URL: robotsURL, Message: fmt.Sprintf("robots.txt fetch failed: status=%d", res.StatusCode)}
	}

	data, err := robotstxt.FromBytes(res.Body)
	if err != nil {
		return false, &Error{URL: robotsURL, Message: "failed to parse robots.txt", Cause: err}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, &Error{URL: rawURL, Message: "invalid source URL", Cause: err}
	}
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}

	return data.FindGroup(userAgent).Test(path), nil
}

// urlFor derives the origin's robots.txt URL from a source URL.
func urlFor(rawURL string) (string, error) {
	p, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if p.Scheme == "" || p.Host == "" {
		return "", fmt.Errorf("URL missing scheme or host: %s", rawURL)
	}
	return fmt.Sprintf("%s://%s/robots.txt", p.Scheme, p.Host), nil
}
