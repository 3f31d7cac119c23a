package main

import (
	"fmt"

	"github.com/fwojciec/pagesift"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	extractions, err := deps.Store.FindExtractions(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions cached. Use 'pagesift extract' to create one.")
		return nil
	}

	for _, ex := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %q  blocks=%d words=%d method=%s fetched=%s\n",
			ex.Key().String(), ex.URL, ex.Title, len(ex.Blocks), ex.EstimatedWords,
			ex.Method, ex.FetchedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
