package pagesift_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterContent(t *testing.T) {
	t.Parallel()

	t.Run("keeps the article and drops the linked stub", func(t *testing.T) {
		t.Parallel()

		seq := pagesift.Sequence{
			{Title: "Intro"},
			{Content: wordsOf(25)},
			{Content: "short", Link: "/x"},
		}

		data := pagesift.FilterContent("Intro", seq)

		require.Len(t, data.Blocks, 2)
		assert.Equal(t, "Intro", data.Blocks[0].Title)
		assert.Equal(t, wordsOf(25), data.Blocks[1].Content)
		assert.Equal(t, 2, data.TotalItems)
		assert.Equal(t, 26, data.TotalWords)
		assert.Equal(t, 2, data.MainContentBlocks)
		assert.Equal(t, 26, data.MainContentWords)
	})

	t.Run("pure navigation page yields an empty result", func(t *testing.T) {
		t.Parallel()

		data := pagesift.FilterContent("Menu", linkPairs(10))

		assert.Empty(t, data.Blocks)
		assert.Zero(t, data.TotalItems)
		assert.Zero(t, data.TotalWords)
	})

	t.Run("empty sequence yields an empty result", func(t *testing.T) {
		t.Parallel()

		data := pagesift.FilterContent("", nil)

		assert.Empty(t, data.Blocks)
		assert.Zero(t, data.TotalItems)
	})

	t.Run("menu run inside an article is pruned and flagged", func(t *testing.T) {
		t.Parallel()

		// A quiet lead, one real paragraph, then a long related-links list.
		// The extended window covers the list; the pruner rolls the region
		// back so the menu entries never reach the output.
		seq := filler(12)
		seq = append(seq, pagesift.Fragment{Content: wordsOf(40)})
		seq = append(seq, linkPairs(25)...)

		data := pagesift.FilterContent("Understanding Interfaces", seq)

		assert.True(t, data.LinkPatternDetected)
		require.NotEmpty(t, data.Blocks)
		for _, b := range data.Blocks {
			assert.Empty(t, b.Link)
		}
	})

	t.Run("identical input yields byte-identical output", func(t *testing.T) {
		t.Parallel()

		seq := pagesift.Sequence{
			{Title: "Intro"},
			{Content: wordsOf(25)},
			{Content: "short", Link: "/x"},
			{Image: "https://example.com/a.png"},
		}
		seq = append(seq, linkPairs(20)...)

		first, err := json.Marshal(pagesift.FilterContent("Intro", seq))
		require.NoError(t, err)
		second, err := json.Marshal(pagesift.FilterContent("Intro", seq))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
