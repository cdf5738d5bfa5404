package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/hndigest/digest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Runner drives the digest pipeline.
	Runner *digest.Runner

	// DigestPath returns the output file path for a digest date, used
	// for the saved-to message.
	DigestPath func(date time.Time) string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run RunCmd `cmd:"" default:"1" help:"Generate today's Hacker News digest"`
}

// RunCmd is the "run" command. Its flag defaults reproduce the plain
// zero-argument invocation: top 30 stories, digest written to the
// working directory.
type RunCmd struct {
	Limit   int    `short:"l" default:"30" help:"Maximum number of stories to process"`
	Dir     string `short:"d" default:"." help:"Directory the digest file is written to"`
	Model   string `short:"m" help:"Gemini model (defaults to the library default)"`
	Verbose bool   `short:"v" help:"Log HTTP and model calls to stderr"`
}
