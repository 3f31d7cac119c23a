package main

import (
	"fmt"

	"github.com/fwojciec/pagesift"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagesift.Errorf(pagesift.EINVALID, "use --force to confirm deletion")
	}

	key, err := pagesift.LocatorKey(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	if err := deps.Store.DeleteExtraction(deps.Ctx, key); err != nil {
		if pagesift.ErrorCode(err) == pagesift.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no cached extraction for %q. Use 'pagesift list' to see cached pages.\n", c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted cached extraction for %q\n", c.URL)
	return nil
}
