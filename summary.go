package hndigest

// Summary holds the model-produced summary for a single story. Stories
// whose summarization fails are skipped and never produce a Summary, so a
// batch's summaries are the success-subsequence of its stories.
type Summary struct {
	Story Story  `json:"story"`
	Text  string `json:"text"`
}
