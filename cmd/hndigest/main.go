package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hndigest"
	"github.com/fwojciec/hndigest/digest"
	"github.com/fwojciec/hndigest/fs"
	"github.com/fwojciec/hndigest/gemini"
	"github.com/fwojciec/hndigest/goquery"
	hnhttp "github.com/fwojciec/hndigest/http"
	hnslog "github.com/fwojciec/hndigest/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hndigest"),
		kong.Description("Generate a daily digest of the Hacker News front page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		cmd := args[0]
		if cmd == "help" || cmd == "--help" || cmd == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	// Story-content fetches follow redirects; the front-page fetch does
	// not, so a redirected front page fails fast instead of being parsed.
	var storyFetcher hndigest.Fetcher = hnhttp.NewFetcher()
	var frontPageFetcher hndigest.Fetcher = hnhttp.NewFetcher(hnhttp.WithoutRedirects())

	var logger *slog.Logger
	if cli.Run.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		storyFetcher = hnslog.NewLoggingFetcher(storyFetcher, logger)
		frontPageFetcher = hnslog.NewLoggingFetcher(frontPageFetcher, logger)
	}
	defer storyFetcher.Close()
	defer frontPageFetcher.Close()

	var agents hndigest.AgentFactory = gemini.NewFactory(client, &digest.PageReader{
		Fetcher:   storyFetcher,
		Extractor: goquery.NewExtractor(),
	}, cli.Run.Model)
	if logger != nil {
		agents = hnslog.NewLoggingAgentFactory(agents, logger)
	}

	writer := fs.NewWriter(cli.Run.Dir)

	deps.Runner = &digest.Runner{
		Fetcher: frontPageFetcher,
		Parser:  goquery.NewParser(),
		Agents:  agents,
		Writer:  writer,
		Limit:   cli.Run.Limit,
	}
	deps.DigestPath = writer.Path

	return kongCtx.Run(deps)
}
