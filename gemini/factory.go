package gemini

import (
	"github.com/fwojciec/hndigest"
	"google.golang.org/genai"
)

// Ensure Factory implements hndigest.AgentFactory at compile time.
var _ hndigest.AgentFactory = (*Factory)(nil)

// Factory creates Gemini agents sharing one client but with independent
// conversation state.
type Factory struct {
	client *genai.Client
	reader hndigest.WebpageReader
	model  string
}

// NewFactory creates a new Factory.
func NewFactory(client *genai.Client, reader hndigest.WebpageReader, model string) *Factory {
	return &Factory{client: client, reader: reader, model: model}
}

// NewAgent returns an agent with empty conversation history.
func (f *Factory) NewAgent() hndigest.Agent {
	return NewAgent(f.client, f.reader, f.model)
}
