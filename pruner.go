package pagesift

// Link-pattern tuning. A sustained run of short linked snippets inside a
// detected region is almost always a navigation or menu list that the
// region scan misread as content.
const (
	// linkPairMinWords is the minimum title-or-content word count for a
	// fragment to participate in a link pair at all.
	linkPairMinWords = 5

	// linkPairRun is the number of consecutive link pairs that truncates a
	// region.
	linkPairRun = 15

	// linkProximity is how many following fragments may supply the link
	// half of a pair.
	linkProximity = 3
)

// PruneResult holds regions with possibly-shortened ends plus a flag
// recording whether any region contained a dense link run.
type PruneResult struct {
	Regions             []Region
	LinkPatternDetected bool
}

// PruneLinkPatterns trims region ends that degenerate into dense link
// lists. A region reduced below its own start is dropped from the output
// entirely.
func PruneLinkPatterns(seq Sequence, regions []Region) PruneResult {
	var result PruneResult
	for _, r := range regions {
		pruned, detected := pruneRegion(seq, r)
		if detected {
			result.LinkPatternDetected = true
		}
		if pruned.End < pruned.Start {
			continue
		}
		result.Regions = append(result.Regions, pruned)
	}
	return result
}

// pruneRegion scans one region for a run of linkPairRun consecutive link
// pairs. On detection the end rolls back to the first pair of the run.
func pruneRegion(seq Sequence, r Region) (Region, bool) {
	var run int
	for i := r.Start; i <= r.End && i < len(seq); i++ {
		if !isLinkPair(seq, i) {
			run = 0
			continue
		}
		run++
		if run >= linkPairRun {
			r.End = i - (linkPairRun - 1)
			return r, true
		}
	}
	return r, false
}

// isLinkPair reports whether the fragment at index i counts as a link
// pair: it carries at least linkPairMinWords words of title or content,
// and either links somewhere itself or sits within linkProximity fragments
// of one that does.
func isLinkPair(seq Sequence, i int) bool {
	if seq[i].Words() < linkPairMinWords {
		return false
	}
	return hasNearbyLink(seq, i)
}
