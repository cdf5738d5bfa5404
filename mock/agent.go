package mock

import (
	"context"

	"github.com/fwojciec/hndigest"
)

var _ hndigest.Agent = (*Agent)(nil)

// Agent is a mock implementation of hndigest.Agent.
type Agent struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (a *Agent) Generate(ctx context.Context, prompt string) (string, error) {
	return a.GenerateFn(ctx, prompt)
}

var _ hndigest.AgentFactory = (*AgentFactory)(nil)

// AgentFactory is a mock implementation of hndigest.AgentFactory.
type AgentFactory struct {
	NewAgentFn func() hndigest.Agent
}

func (f *AgentFactory) NewAgent() hndigest.Agent {
	return f.NewAgentFn()
}
