package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hndigest"
)

// Ensure LoggingAgent implements hndigest.Agent at compile time.
var _ hndigest.Agent = (*LoggingAgent)(nil)

// LoggingAgent wraps an Agent with model-call logging.
type LoggingAgent struct {
	next   hndigest.Agent
	logger *slog.Logger
}

// NewLoggingAgent creates a new LoggingAgent.
func NewLoggingAgent(next hndigest.Agent, logger *slog.Logger) *LoggingAgent {
	return &LoggingAgent{next: next, logger: logger}
}

// Generate delegates to the wrapped agent and logs the outcome.
func (a *LoggingAgent) Generate(ctx context.Context, prompt string) (string, error) {
	begin := time.Now()
	text, err := a.next.Generate(ctx, prompt)
	if err != nil {
		a.logger.Error("generate",
			"prompt_chars", len(prompt),
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return "", err
	}
	a.logger.Info("generate",
		"prompt_chars", len(prompt),
		"response_chars", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}

// Ensure LoggingAgentFactory implements hndigest.AgentFactory.
var _ hndigest.AgentFactory = (*LoggingAgentFactory)(nil)

// LoggingAgentFactory wraps an AgentFactory so every created agent logs
// its model calls.
type LoggingAgentFactory struct {
	next   hndigest.AgentFactory
	logger *slog.Logger
}

// NewLoggingAgentFactory creates a new LoggingAgentFactory.
func NewLoggingAgentFactory(next hndigest.AgentFactory, logger *slog.Logger) *LoggingAgentFactory {
	return &LoggingAgentFactory{next: next, logger: logger}
}

// NewAgent returns a logging-wrapped agent with fresh conversation state.
func (f *LoggingAgentFactory) NewAgent() hndigest.Agent {
	return NewLoggingAgent(f.next.NewAgent(), f.logger)
}
