package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/hndigest"
	"github.com/fwojciec/hndigest/mock"
	hnslog "github.com/fwojciec/hndigest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAgent_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs prompt and response sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Agent{
			GenerateFn: func(ctx context.Context, prompt string) (string, error) {
				return "response", nil
			},
		}

		agent := hnslog.NewLoggingAgent(inner, logger)
		text, err := agent.Generate(context.Background(), "prompt")

		require.NoError(t, err)
		assert.Equal(t, "response", text)
		output := buf.String()
		assert.Contains(t, output, "generate")
		assert.Contains(t, output, "prompt_chars=6")
		assert.Contains(t, output, "response_chars=8")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Agent{
			GenerateFn: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("model overloaded")
			},
		}

		agent := hnslog.NewLoggingAgent(inner, logger)
		_, err := agent.Generate(context.Background(), "prompt")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"model overloaded\"")
	})
}

func TestLoggingAgentFactory_NewAgent(t *testing.T) {
	t.Parallel()

	t.Run("wraps created agents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		factory := hnslog.NewLoggingAgentFactory(&mock.AgentFactory{
			NewAgentFn: func() hndigest.Agent {
				return &mock.Agent{
					GenerateFn: func(ctx context.Context, prompt string) (string, error) {
						return "ok", nil
					},
				}
			},
		}, logger)

		agent := factory.NewAgent()
		_, err := agent.Generate(context.Background(), "hello")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "generate")
	})
}
