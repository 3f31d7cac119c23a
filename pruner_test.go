package pagesift_test

import (
	"testing"

	"github.com/fwojciec/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkPairs returns n fragments that each count as a link pair: five or
// more words of content plus an embedded link.
func linkPairs(n int) pagesift.Sequence {
	seq := make(pagesift.Sequence, n)
	for i := range seq {
		seq[i] = pagesift.Fragment{Content: "a reasonably sized menu entry", Link: "/nav"}
	}
	return seq
}

func TestPruneLinkPatterns(t *testing.T) {
	t.Parallel()

	t.Run("run of fifteen pairs truncates the region", func(t *testing.T) {
		t.Parallel()

		// Ten article paragraphs followed by a 15-entry menu.
		seq := append(contentAt(10, 0, 5), linkPairs(15)...)
		regions := []pagesift.Region{{Start: 0, End: 24, Reason: pagesift.ReasonContentRun, Window: 10}}

		result := pagesift.PruneLinkPatterns(seq, regions)

		require.Len(t, result.Regions, 1)
		assert.True(t, result.LinkPatternDetected)
		// The run ends at index 24, so the end rolls back to its start.
		assert.Equal(t, 10, result.Regions[0].End)
		assert.Equal(t, 0, result.Regions[0].Start)
	})

	t.Run("run of fourteen pairs does not truncate", func(t *testing.T) {
		t.Parallel()

		seq := append(contentAt(10, 0, 5), linkPairs(14)...)
		regions := []pagesift.Region{{Start: 0, End: 23, Reason: pagesift.ReasonContentRun, Window: 10}}

		result := pagesift.PruneLinkPatterns(seq, regions)

		require.Len(t, result.Regions, 1)
		assert.False(t, result.LinkPatternDetected)
		assert.Equal(t, 23, result.Regions[0].End)
	})

	t.Run("unlinked fragment resets the run", func(t *testing.T) {
		t.Parallel()

		// 8 pairs, a few unlinked paragraphs, then 8 more pairs: the reset
		// keeps either run from reaching fifteen.
		seq := linkPairs(8)
		for i := 0; i < 4; i++ {
			seq = append(seq, pagesift.Fragment{Content: "an ordinary paragraph with no link anywhere near it"})
		}
		seq = append(seq, linkPairs(8)...)
		regions := []pagesift.Region{{Start: 0, End: len(seq) - 1}}

		result := pagesift.PruneLinkPatterns(seq, regions)

		require.Len(t, result.Regions, 1)
		assert.False(t, result.LinkPatternDetected)
		assert.Equal(t, len(seq)-1, result.Regions[0].End)
	})

	t.Run("short fragment resets the run even when linked", func(t *testing.T) {
		t.Parallel()

		seq := linkPairs(10)
		seq = append(seq, pagesift.Fragment{Content: "too few", Link: "/x"})
		seq = append(seq, linkPairs(10)...)
		regions := []pagesift.Region{{Start: 0, End: len(seq) - 1}}

		result := pagesift.PruneLinkPatterns(seq, regions)

		assert.False(t, result.LinkPatternDetected)
	})

	t.Run("link within the next three fragments completes a pair", func(t *testing.T) {
		t.Parallel()

		// Alternating text and bare-link fragments: the text fragments pair
		// with the links that follow them, but the bare links reset the
		// counter, so the run never accumulates.
		var seq pagesift.Sequence
		for i := 0; i < 20; i++ {
			seq = append(seq,
				pagesift.Fragment{Content: "a reasonably sized menu entry"},
				pagesift.Fragment{Link: "/nav"},
			)
		}
		regions := []pagesift.Region{{Start: 0, End: len(seq) - 1}}

		result := pagesift.PruneLinkPatterns(seq, regions)

		assert.False(t, result.LinkPatternDetected)
	})

	t.Run("region consisting entirely of one run keeps its start", func(t *testing.T) {
		t.Parallel()

		seq := linkPairs(15)
		regions := []pagesift.Region{{Start: 0, End: 14}}

		result := pagesift.PruneLinkPatterns(seq, regions)

		require.Len(t, result.Regions, 1)
		assert.True(t, result.LinkPatternDetected)
		assert.Equal(t, 0, result.Regions[0].End)
	})

	t.Run("no regions pass through unchanged", func(t *testing.T) {
		t.Parallel()

		result := pagesift.PruneLinkPatterns(linkPairs(30), nil)

		assert.Empty(t, result.Regions)
		assert.False(t, result.LinkPatternDetected)
	})
}
