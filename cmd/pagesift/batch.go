package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/bloom"
	"github.com/fwojciec/pagesift/extract"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to process.")
		return nil
	}

	batch := &extract.Batch{
		Runner:  deps.Runner,
		Limiter: deps.Limiter,
		Dedupe:  bloom.NewFilter(uint(len(urls))+1000, 0.01),
		Delay:   c.Delay,
		Force:   c.Force,
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s ok (%s)\n",
				event.Completed, event.Total, event.URL, event.Result.ProcessingTime)
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s failed: %s\n",
				event.Completed, event.Total, event.URL, event.Result.Error)
		case extract.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s skipped (duplicate)\n",
				event.Completed, event.Total, event.URL)
		}
	}

	result, err := batch.Run(deps.Ctx, urls, progress)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "\n%d succeeded, %d failed, %d skipped\n",
			result.Succeeded, result.Failed, result.Skipped)
	}
	return err
}

// collectURLs gathers the batch input from the URL file or the sitemap.
func (c *BatchCmd) collectURLs(deps *Dependencies) ([]string, error) {
	if c.Sitemap != "" {
		return deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap)
	}

	if c.File == "" {
		return nil, pagesift.Errorf(pagesift.EINVALID, "provide a URL file or --sitemap")
	}

	f, err := os.Open(c.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL file: %w", err)
	}
	return urls, nil
}
