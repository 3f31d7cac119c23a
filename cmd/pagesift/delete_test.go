package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pagesift"
	main "github.com/fwojciec/pagesift/cmd/pagesift"
	"github.com/fwojciec/pagesift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes the cached extraction", func(t *testing.T) {
		t.Parallel()

		var deleted pagesift.Key
		store := &mock.ExtractionStore{
			DeleteExtractionFn: func(ctx context.Context, key pagesift.Key) error {
				deleted = key
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Store:  store,
		}

		cmd := &main.DeleteCmd{URL: "https://example.com/article", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "example.com", deleted.Domain)
		assert.NotEmpty(t, deleted.URLHash)
		assert.Contains(t, stdout.String(), "Deleted cached extraction")
	})

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Store:  &mock.ExtractionStore{},
		}

		cmd := &main.DeleteCmd{URL: "https://example.com/article"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing entries", func(t *testing.T) {
		t.Parallel()

		store := &mock.ExtractionStore{
			DeleteExtractionFn: func(ctx context.Context, key pagesift.Key) error {
				return pagesift.Errorf(pagesift.ENOTFOUND, "extraction not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Store:  store,
		}

		cmd := &main.DeleteCmd{URL: "https://example.com/missing", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "no cached extraction")
	})

	t.Run("rejects invalid locators", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Store:  &mock.ExtractionStore{},
		}

		cmd := &main.DeleteCmd{URL: "not a url", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	})
}
