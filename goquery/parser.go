// Package goquery provides CSS-selector based implementations of the
// hndigest parsing interfaces: the front-page story parser and the
// article text extractor.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hndigest"
)

// Ensure Parser implements hndigest.FrontPageParser at compile time.
var _ hndigest.FrontPageParser = (*Parser)(nil)

// Parser extracts stories from Hacker News front-page HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFrontPage returns the stories on the front page in display order.
// Each story row (tr.athing) is paired with its immediately-following
// metadata row for points and comment count. Rows without a title link
// are skipped; a missing metadata row or unparseable counts default to
// zero rather than aborting the parse.
func (p *Parser) ParseFrontPage(html string) ([]hndigest.Story, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, hndigest.Errorf(hndigest.EINVALID, "failed to parse HTML: %v", err)
	}

	stories := []hndigest.Story{}

	doc.Find("tr.athing").Each(func(_ int, row *goquery.Selection) {
		titleLink := row.Find("span.titleline > a").First()
		if titleLink.Length() == 0 {
			return // malformed row, skip
		}

		title := strings.TrimSpace(titleLink.Text())
		href, _ := titleLink.Attr("href")

		// In-site links like "item?id=123" are relative; resolve them
		// against the front page.
		if strings.HasPrefix(href, "item?") {
			href = hndigest.FrontPageURL + href
		}

		story := hndigest.Story{Title: title, URL: href}

		meta := metadataRow(row)
		if meta != nil {
			if score := meta.Find("span.score").First(); score.Length() > 0 {
				story.Points = leadingInt(score.Text())
			}
			meta.Find("td.subtext a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
				text := strings.TrimSpace(a.Text())
				if !strings.Contains(text, "comment") {
					return true
				}
				story.Comments = leadingInt(text)
				return false
			})
		}

		stories = append(stories, story)
	})

	return stories, nil
}

// metadataRow returns the tr immediately following a story row, or nil if
// the story row has no following sibling row.
func metadataRow(row *goquery.Selection) *goquery.Selection {
	next := row.Next()
	if next.Length() == 0 || !next.Is("tr") {
		return nil
	}
	return next
}

// leadingInt parses the leading integer token of a string like
// "42 points" or "7 comments". Any parse failure yields 0.
func leadingInt(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
