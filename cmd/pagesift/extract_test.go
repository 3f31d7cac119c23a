package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/pagesift"
	main "github.com/fwojciec/pagesift/cmd/pagesift"
	"github.com/fwojciec/pagesift/extract"
	"github.com/fwojciec/pagesift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRunner returns a Runner that extracts a fixed page without touching
// the network.
func testRunner() *extract.Runner {
	return &extract.Runner{
		Lightweight: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>ok</html>", nil
			},
		},
		Fragments: &mock.FragmentExtractor{
			ExtractFn: func(html, baseURL string) (*pagesift.Page, error) {
				return &pagesift.Page{
					Title: "A Sample Page",
					Fragments: pagesift.Sequence{
						{Title: "A Sample Page"},
						{Content: strings.TrimSpace(strings.Repeat("word ", 25))},
					},
				}, nil
			},
		},
	}
}

func failingRunner(code string, message string) *extract.Runner {
	return &extract.Runner{
		Lightweight: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", pagesift.Errorf(code, "%s", message)
			},
		},
		Fragments: &mock.FragmentExtractor{
			ExtractFn: func(html, baseURL string) (*pagesift.Page, error) {
				return &pagesift.Page{}, nil
			},
		},
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints main content blocks", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runner: testRunner(),
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/page"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "## A Sample Page")
		assert.Contains(t, output, "method=lightweight")
		assert.Empty(t, stderr.String())
	})

	t.Run("emits JSON with --json", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runner: testRunner(),
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/page", JSON: true}
		err := cmd.Run(deps)

		require.NoError(t, err)

		var res pagesift.Result
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
		assert.True(t, res.Success)
		require.NotNil(t, res.Data)
		assert.Equal(t, "A Sample Page", res.Data.Title)
	})

	t.Run("reports failure and render hint", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runner: failingRunner(pagesift.ETIMEOUT, "request timed out"),
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/slow"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "request timed out")
		assert.Contains(t, stderr.String(), "--render")
	})

	t.Run("no render hint for network failures", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runner: failingRunner(pagesift.ENETWORK, "no such host"),
		}

		cmd := &main.ExtractCmd{URL: "https://nonexistent.invalid/"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.NotContains(t, stderr.String(), "--render")
	})
}
