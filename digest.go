package hndigest

import (
	"context"
	"time"
)

// Digest is the final formatted aggregate summary for one run.
type Digest struct {
	// Date stamps the run and names the output file.
	Date time.Time `json:"date"`

	// Text is the model-formatted digest body, stored verbatim.
	Text string `json:"text"`
}

// Validate returns an error if the digest contains invalid fields.
func (d *Digest) Validate() error {
	if d.Date.IsZero() {
		return Errorf(EINVALID, "digest date required")
	}
	if d.Text == "" {
		return Errorf(EINVALID, "digest text required")
	}
	return nil
}

// DigestWriter persists a digest. Writing the same date twice overwrites
// the earlier digest without warning.
type DigestWriter interface {
	WriteDigest(ctx context.Context, digest *Digest) error
}
