package digest

import (
	"fmt"
	"strings"

	"github.com/fwojciec/hndigest"
)

// BuildSummaryPrompt builds the per-story prompt. It instructs the agent
// to read the article with the fetch_webpage tool before summarizing.
func BuildSummaryPrompt(story *hndigest.Story) string {
	var sb strings.Builder
	sb.WriteString("Please fetch and summarize this article:\n")
	fmt.Fprintf(&sb, "Title: %s\n", story.Title)
	fmt.Fprintf(&sb, "URL: %s\n\n", story.URL)
	sb.WriteString("Use the fetch_webpage tool to get the article content, then provide a brief summary.")
	return sb.String()
}

// BuildDigestPrompt builds the consolidated prompt embedding every
// successful summary. An empty summary list still produces a valid
// prompt; the model then reports an empty front page.
func BuildDigestPrompt(summaries []hndigest.Summary) string {
	var sb strings.Builder
	sb.WriteString("Based on the following article summaries from Hacker News, create a cohesive daily digest.\n")
	sb.WriteString("Group related articles together if possible, and highlight the most significant stories.\n\n")
	sb.WriteString("Articles:\n")

	for _, s := range summaries {
		sb.WriteString("\n---\n")
		fmt.Fprintf(&sb, "Title: %s\n", s.Story.Title)
		fmt.Fprintf(&sb, "Points: %d | Comments: %d\n", s.Story.Points, s.Story.Comments)
		fmt.Fprintf(&sb, "URL: %s\n", s.Story.URL)
		fmt.Fprintf(&sb, "Summary: %s\n", s.Text)
	}

	sb.WriteString("\n\nPlease create a well-formatted digest with:\n")
	sb.WriteString("1. Top Stories (2-3 most significant)\n")
	sb.WriteString("2. Tech/Development news\n")
	sb.WriteString("3. Business/Startup news\n")
	sb.WriteString("4. Other interesting reads\n")
	sb.WriteString("5. A brief overall summary of today's HN front page themes\n\n")
	sb.WriteString("Format it nicely for reading.")
	return sb.String()
}
