// Package digest provides the digest pipeline orchestration. It
// coordinates front-page fetching, story parsing, per-story
// summarization, and digest generation and persistence.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/hndigest"
)

// Runner drives one digest run. All collaborator fields are required
// except Limit (defaults to hndigest.MaxStories) and Now (defaults to
// time.Now). Stories are processed strictly sequentially.
type Runner struct {
	// Fetcher retrieves the front page. Configure it without redirect
	// following; article fetching goes through the agent's tool instead.
	Fetcher hndigest.Fetcher

	Parser hndigest.FrontPageParser
	Agents hndigest.AgentFactory
	Writer hndigest.DigestWriter

	// Limit caps the number of stories processed per run.
	Limit int

	// Now stamps the digest. Overridable for tests.
	Now func() time.Time
}

// Result holds the outcome of a digest run. Digest is nil when the front
// page had no stories and the run ended early without writing a file.
type Result struct {
	Found      int
	Summarized int
	Skipped    int
	Digest     *hndigest.Digest
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressFrontPageParsed fires once after parsing; Total carries the
	// number of stories found.
	ProgressFrontPageParsed ProgressType = iota

	// ProgressStoryStarted fires before each story's summarization.
	ProgressStoryStarted

	// ProgressStorySummarized fires after a successful summarization.
	ProgressStorySummarized

	// ProgressStorySkipped fires when a story's summarization failed;
	// Err carries the cause.
	ProgressStorySkipped

	// ProgressDigestStarted fires before the final digest generation.
	ProgressDigestStarted
)

// ProgressEvent reports progress during a digest run.
type ProgressEvent struct {
	Type  ProgressType
	Index int // 1-based story index, set for story events
	Total int
	Story *hndigest.Story
	Err   error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run executes the full pipeline. Per-story failures are skipped; a
// front-page fetch or parse failure, a digest generation failure, or a
// write failure aborts the run. An empty front page is a normal early
// termination: no digest is generated and no file is written.
func (r *Runner) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	rawHTML, err := r.Fetcher.Fetch(ctx, hndigest.FrontPageURL)
	if err != nil {
		return nil, fmt.Errorf("front page fetch: %w", err)
	}

	stories, err := r.Parser.ParseFrontPage(rawHTML)
	if err != nil {
		return nil, fmt.Errorf("front page parse: %w", err)
	}

	notify(progress, ProgressEvent{Type: ProgressFrontPageParsed, Total: len(stories)})

	if len(stories) == 0 {
		return &Result{}, nil
	}

	limit := r.Limit
	if limit <= 0 {
		limit = hndigest.MaxStories
	}
	if len(stories) > limit {
		stories = stories[:limit]
	}

	result := &Result{Found: len(stories)}

	// One agent session for the whole batch: summaries share a
	// conversation, exactly like a chat session working through a list.
	agent := r.Agents.NewAgent()

	var summaries []hndigest.Summary
	for i := range stories {
		story := stories[i]
		notify(progress, ProgressEvent{Type: ProgressStoryStarted, Index: i + 1, Total: len(stories), Story: &story})

		text, err := agent.Generate(ctx, BuildSummaryPrompt(&story))
		if err != nil {
			result.Skipped++
			notify(progress, ProgressEvent{Type: ProgressStorySkipped, Index: i + 1, Total: len(stories), Story: &story, Err: err})
			continue
		}

		summaries = append(summaries, hndigest.Summary{Story: story, Text: text})
		result.Summarized++
		notify(progress, ProgressEvent{Type: ProgressStorySummarized, Index: i + 1, Total: len(stories), Story: &story})
	}

	notify(progress, ProgressEvent{Type: ProgressDigestStarted, Total: len(summaries)})

	// Fresh session for the digest so the per-article conversation
	// history doesn't crowd the final prompt's context.
	digestAgent := r.Agents.NewAgent()
	text, err := digestAgent.Generate(ctx, BuildDigestPrompt(summaries))
	if err != nil {
		return nil, fmt.Errorf("digest generation: %w", err)
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	digest := &hndigest.Digest{Date: now(), Text: text}
	if err := r.Writer.WriteDigest(ctx, digest); err != nil {
		return nil, fmt.Errorf("write digest: %w", err)
	}

	result.Digest = digest
	return result, nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
