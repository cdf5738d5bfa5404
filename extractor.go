package hndigest

// MaxTextLength bounds extracted article text. Longer pages are truncated
// and marked with TruncationMarker.
const MaxTextLength = 15000

// TruncationMarker is appended verbatim to truncated article text.
const TruncationMarker = "\n\n[Content truncated...]"

// Extractor turns raw HTML into cleaned plain text suitable for a
// language-model prompt.
type Extractor interface {
	// ExtractText removes non-content elements (scripts, styles,
	// navigation chrome) and returns the remaining text, truncated to
	// MaxTextLength runes.
	ExtractText(html string) (string, error)
}
