package mock

import "github.com/fwojciec/hndigest"

var _ hndigest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of hndigest.Extractor.
type Extractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *Extractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
