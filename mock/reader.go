package mock

import (
	"context"

	"github.com/fwojciec/hndigest"
)

var _ hndigest.WebpageReader = (*WebpageReader)(nil)

// WebpageReader is a mock implementation of hndigest.WebpageReader.
type WebpageReader struct {
	ReadWebpageFn func(ctx context.Context, url string) string
}

func (r *WebpageReader) ReadWebpage(ctx context.Context, url string) string {
	return r.ReadWebpageFn(ctx, url)
}
