// Package gemini implements the hndigest language-model agent using the
// Google Gemini API. An Agent is a conversational session with access to
// a single tool, fetch_webpage, backed by a hndigest.WebpageReader.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/hndigest"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-2.5-flash"

// FetchWebpageTool is the name of the tool exposed to the model.
const FetchWebpageTool = "fetch_webpage"

// maxToolTurns bounds the function-calling loop for a single prompt.
const maxToolTurns = 8

const systemPrompt = `You are a helpful assistant that summarizes web articles concisely.
When asked to summarize an article, provide:
1. A 2-3 sentence summary of the main points
2. Key takeaways or interesting facts
Keep summaries brief and informative.`

// Ensure Agent implements hndigest.Agent at compile time.
var _ hndigest.Agent = (*Agent)(nil)

// Agent is a conversational Gemini session. History accumulates across
// Generate calls; use a Factory to obtain a session with fresh context.
type Agent struct {
	client  *genai.Client
	reader  hndigest.WebpageReader
	model   string
	history []*genai.Content
}

// NewAgent creates a new Agent with empty conversation history.
func NewAgent(client *genai.Client, reader hndigest.WebpageReader, model string) *Agent {
	if model == "" {
		model = DefaultModel
	}
	return &Agent{client: client, reader: reader, model: model}
}

// Generate sends a prompt and resolves any fetch_webpage tool calls the
// model makes before returning its final text response.
func (a *Agent) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", hndigest.Errorf(hndigest.EINVALID, "prompt required")
	}

	a.history = append(a.history, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	})

	config := BuildConfig()

	for turn := 0; turn < maxToolTurns; turn++ {
		result, err := a.client.Models.GenerateContent(ctx, a.model, a.history, config)
		if err != nil {
			return "", err
		}
		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return "", hndigest.Errorf(hndigest.EINTERNAL, "gemini returned empty result")
		}

		content := result.Candidates[0].Content
		a.history = append(a.history, content)

		var calls []*genai.FunctionCall
		for _, part := range content.Parts {
			if part.FunctionCall != nil {
				calls = append(calls, part.FunctionCall)
			}
		}
		if len(calls) == 0 {
			return result.Text(), nil
		}

		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: HandleFunctionCall(ctx, a.reader, call),
				},
			})
		}
		a.history = append(a.history, &genai.Content{
			Role:  "user",
			Parts: parts,
		})
	}

	return "", hndigest.Errorf(hndigest.EINTERNAL, "tool loop exceeded %d turns", maxToolTurns)
}

// HandleFunctionCall executes a single tool call against the reader.
// The response is always well-formed: tool failures (including fetch
// errors) surface as in-band text the model can reason about.
func HandleFunctionCall(ctx context.Context, reader hndigest.WebpageReader, call *genai.FunctionCall) map[string]any {
	if call.Name != FetchWebpageTool {
		return map[string]any{"error": fmt.Sprintf("unknown tool %q", call.Name)}
	}
	url, _ := call.Args["url"].(string)
	if url == "" {
		return map[string]any{"error": "url argument required"}
	}
	return map[string]any{"output": reader.ReadWebpage(ctx, url)}
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature:     &temp,
		MaxOutputTokens: 4096,
		Tools: []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{FetchWebpageDeclaration()},
		}},
	}
}

// FetchWebpageDeclaration declares the fetch_webpage tool schema.
func FetchWebpageDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        FetchWebpageTool,
		Description: "Fetch the content of a webpage and return it as text.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"url": {
					Type:        genai.TypeString,
					Description: "The URL of the webpage to fetch",
				},
			},
			Required: []string{"url"},
		},
	}
}
