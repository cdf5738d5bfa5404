package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/hndigest/digest"
)

const bannerLine = "============================================================"

// Run executes the run command: one full digest pass.
func (c *RunCmd) Run(deps *Dependencies) error {
	out := deps.Stdout

	fmt.Fprintln(out, bannerLine)
	fmt.Fprintln(out, "HACKER NEWS DAILY DIGEST")
	fmt.Fprintln(out, bannerLine)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Fetching Hacker News front page...")

	result, err := deps.Runner.Run(deps.Ctx, func(event digest.ProgressEvent) {
		printProgress(out, event)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if result.Digest == nil {
		fmt.Fprintln(out, "No articles found. Exiting.")
		return nil
	}

	fmt.Fprintf(out, "\n✓ Digest saved to: %s\n", deps.DigestPath(result.Digest.Date))
	fmt.Fprintln(out)
	fmt.Fprintln(out, bannerLine)
	fmt.Fprintln(out, "TODAY'S HACKER NEWS DIGEST")
	fmt.Fprintln(out, bannerLine)
	fmt.Fprintln(out, result.Digest.Text)
	fmt.Fprintln(out)
	fmt.Fprintln(out, bannerLine)
	fmt.Fprintln(out, "END OF DIGEST")
	fmt.Fprintln(out, bannerLine)

	return nil
}

func printProgress(out io.Writer, event digest.ProgressEvent) {
	switch event.Type {
	case digest.ProgressFrontPageParsed:
		fmt.Fprintf(out, "Found %d articles\n", event.Total)
	case digest.ProgressStoryStarted:
		fmt.Fprintf(out, "\n[%d/%d] Processing: %s...\n", event.Index, event.Total, truncate(event.Story.Title, 60))
	case digest.ProgressStorySummarized:
		fmt.Fprintln(out, "   ✓ Summarized successfully")
	case digest.ProgressStorySkipped:
		fmt.Fprintf(out, "   ✗ Skipped: %s\n", truncate(event.Err.Error(), 50))
	case digest.ProgressDigestStarted:
		fmt.Fprintln(out)
		fmt.Fprintln(out, bannerLine)
		fmt.Fprintln(out, "GENERATING FINAL DIGEST")
		fmt.Fprintln(out, bannerLine)
	}
}

// truncate shortens s to at most n runes for console display.
func truncate(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n])
}
