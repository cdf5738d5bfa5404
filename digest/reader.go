package digest

import (
	"context"
	"fmt"

	"github.com/fwojciec/hndigest"
)

// Ensure PageReader implements hndigest.WebpageReader at compile time.
var _ hndigest.WebpageReader = (*PageReader)(nil)

// PageReader composes a Fetcher and an Extractor into the webpage-reading
// tool exposed to the agent.
type PageReader struct {
	Fetcher   hndigest.Fetcher
	Extractor hndigest.Extractor
}

// ReadWebpage fetches a URL and returns its cleaned text. Failures are
// reported in-band: the returned string describes the error so the model
// can still respond, and the caller never sees an error value.
func (r *PageReader) ReadWebpage(ctx context.Context, url string) string {
	rawHTML, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Sprintf("Error fetching %s: %s", url, err)
	}

	text, err := r.Extractor.ExtractText(rawHTML)
	if err != nil {
		return fmt.Sprintf("Error fetching %s: %s", url, err)
	}

	return text
}
