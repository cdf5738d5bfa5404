package hndigest

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// WebpageReader fetches a URL and returns its readable text. This is the
// tool capability exposed to the language-model agent: failures are
// reported in-band as a descriptive string ("Error fetching <url>: ...")
// rather than as an error value, so the model sees what went wrong and
// can still produce a degraded summary.
type WebpageReader interface {
	ReadWebpage(ctx context.Context, url string) string
}
