package mock

import (
	"context"

	"github.com/fwojciec/hndigest"
)

var _ hndigest.DigestWriter = (*DigestWriter)(nil)

// DigestWriter is a mock implementation of hndigest.DigestWriter.
type DigestWriter struct {
	WriteDigestFn func(ctx context.Context, digest *hndigest.Digest) error
}

func (w *DigestWriter) WriteDigest(ctx context.Context, digest *hndigest.Digest) error {
	return w.WriteDigestFn(ctx, digest)
}
