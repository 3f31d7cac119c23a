package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/pagesift"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	res := deps.Runner.ExtractURL(deps.Ctx, c.URL, c.Force)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if !res.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", res.Error)
		if res.ShouldFallbackToBrowser {
			fmt.Fprintln(deps.Stderr, "Hint: retry with --render to use a headless browser")
		}
		return pagesift.Errorf(pagesift.EINTERNAL, "extraction failed: %s", res.Error)
	}

	printResult(deps.Stdout, c.URL, res)
	return nil
}

// printResult writes a human-readable rendition of an extraction.
func printResult(w io.Writer, url string, res *pagesift.Result) {
	data := res.Data

	fmt.Fprintf(w, "%s\n", url)
	fmt.Fprintf(w, "method=%s cached=%t duration=%s\n", res.Method, res.Cached, res.ProcessingTime)
	fmt.Fprintf(w, "blocks=%d/%d words=%d/%d\n\n",
		data.MainContentBlocks, data.TotalItems, data.MainContentWords, data.TotalWords)

	for _, b := range data.Blocks {
		if !b.IsMainContent {
			continue
		}
		switch {
		case b.Title != "":
			fmt.Fprintf(w, "## %s\n\n", b.Title)
		case b.Image != "":
			fmt.Fprintf(w, "![%s](%s)\n\n", b.Alt, b.Image)
		default:
			fmt.Fprintf(w, "%s\n\n", b.Content)
		}
	}
}
