package hndigest

// FrontPageURL is the Hacker News front page. In-site story links are
// resolved against it.
const FrontPageURL = "https://news.ycombinator.com/"

// MaxStories caps a digest run to the first entries of the front page.
const MaxStories = 30

// Story represents a single front-page entry. Values are immutable after
// parsing and are not persisted across runs.
type Story struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Points   int    `json:"points"`
	Comments int    `json:"comments"`
}

// Validate returns an error if the story contains invalid fields.
func (s *Story) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "story title required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "story URL required")
	}
	return nil
}

// FrontPageParser parses front-page HTML into structured stories.
type FrontPageParser interface {
	// ParseFrontPage returns the stories on the front page in display
	// order. Malformed rows are skipped, not fatal. A page with no story
	// rows parses to an empty slice with a nil error.
	ParseFrontPage(html string) ([]Story, error)
}
