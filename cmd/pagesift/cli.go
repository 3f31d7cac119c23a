package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/extract"
	"github.com/fwojciec/pagesift/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Store    pagesift.ExtractionStore
	Runner   *extract.Runner
	Sitemaps pagesift.SitemapService
	Limiter  pagesift.DomainLimiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and store writes to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract the main content of a page"`
	Batch   BatchCmd   `cmd:"" help:"Extract a list of pages sequentially"`
	List    ListCmd    `cmd:"" help:"List cached extractions"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a cached extraction"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Force  bool   `short:"f" help:"Ignore any cached result"`
	Render bool   `short:"r" help:"Enable the headless browser fetch tier"`
	JSON   bool   `help:"Emit the full result as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File    string        `arg:"" optional:"" type:"existingfile" help:"File with one URL per line"`
	Sitemap string        `short:"s" help:"Discover URLs from this site's sitemap instead of a file"`
	Delay   time.Duration `short:"d" default:"1s" help:"Pause between consecutive pages"`
	Force   bool          `short:"f" help:"Ignore cached results"`
	Render  bool          `short:"r" help:"Enable the headless browser fetch tier"`
	RPS     float64       `default:"1.0" help:"Per-domain requests per second"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Page URL"`
	Force bool   `help:"Confirm deletion"`
}
