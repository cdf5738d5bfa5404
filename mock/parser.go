package mock

import "github.com/fwojciec/hndigest"

var _ hndigest.FrontPageParser = (*FrontPageParser)(nil)

// FrontPageParser is a mock implementation of hndigest.FrontPageParser.
type FrontPageParser struct {
	ParseFrontPageFn func(html string) ([]hndigest.Story, error)
}

func (p *FrontPageParser) ParseFrontPage(html string) ([]hndigest.Story, error) {
	return p.ParseFrontPageFn(html)
}
