package hndigest

import "context"

// Agent is a conversational language-model session. Prompts sent through
// Generate share one conversation: each call sees the history of the
// calls before it. The agent may invoke its configured tools zero or
// more times while producing a response.
type Agent interface {
	// Generate sends a prompt and returns the model's final text
	// response after any tool invocations have been resolved.
	Generate(ctx context.Context, prompt string) (string, error)
}

// AgentFactory creates agents with fresh conversation state. The digest
// generation step uses a new agent so the per-article conversation
// history does not leak into the final call.
type AgentFactory interface {
	NewAgent() Agent
}
