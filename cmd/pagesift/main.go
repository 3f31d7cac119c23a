package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/extract"
	psgoquery "github.com/fwojciec/pagesift/goquery"
	pshttp "github.com/fwojciec/pagesift/http"
	"github.com/fwojciec/pagesift/rod"
	psslog "github.com/fwojciec/pagesift/slog"
	"github.com/fwojciec/pagesift/sqlite"
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
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the extraction cache.
	DB *sqlite.DB

	// Store for end-to-end testing.
	Store pagesift.ExtractionStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("pagesift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGESIFT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.Store = psslog.NewLoggingExtractionStore(sqlite.NewExtractionService(m.DB), logger)
	deps.DB = m.DB
	deps.Store = m.Store
	deps.Sitemaps = psslog.NewLoggingSitemapService(pshttp.NewSitemapService(nil), logger)

	// Wire fetch tiers for extraction commands
	if cmd == "extract" || cmd == "batch" {
		lightweight := pagesift.Fetcher(pshttp.NewFetcher())
		lightweight = psslog.NewLoggingFetcher(lightweight, logger)
		defer lightweight.Close()

		runner := &extract.Runner{
			Lightweight: lightweight,
			Fragments:   psgoquery.NewExtractor(),
			Store:       m.Store,
			NeedsRender: psgoquery.NeedsRender,
		}

		if (cmd == "extract" && cli.Extract.Render) || (cmd == "batch" && cli.Batch.Render) {
			rendered, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer rendered.Close()
			runner.Rendered = psslog.NewLoggingFetcher(rendered, logger)
		}

		deps.Runner = runner
	}

	if cmd == "batch" {
		rps := cli.Batch.RPS
		if rps <= 0 {
			rps = 1.0
		}
		deps.Limiter = extract.NewDomainLimiter(rps)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGESIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagesift.db"
	}
	dir := filepath.Join(home, ".pagesift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagesift.db")
}
