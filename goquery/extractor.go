package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hndigest"
	"golang.org/x/net/html"
)

// Ensure Extractor implements hndigest.Extractor at compile time.
var _ hndigest.Extractor = (*Extractor)(nil)

// Extractor reduces an HTML page to its readable text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// removedSelector matches elements that are structurally never content.
const removedSelector = "script, style, nav, header, footer, aside"

// ExtractText strips non-content elements and returns the remaining text.
// Text nodes are trimmed individually and joined with newlines. Output
// longer than hndigest.MaxTextLength runes is truncated and marked with
// hndigest.TruncationMarker.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", hndigest.Errorf(hndigest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", hndigest.Errorf(hndigest.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(removedSelector).Remove()

	var parts []string
	for _, root := range doc.Selection.Nodes {
		collectText(root, &parts)
	}
	text := strings.Join(parts, "\n")

	if runes := []rune(text); len(runes) > hndigest.MaxTextLength {
		text = string(runes[:hndigest.MaxTextLength]) + hndigest.TruncationMarker
	}

	return text, nil
}

// collectText appends the trimmed content of every text node under n,
// depth-first, skipping whitespace-only nodes.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
