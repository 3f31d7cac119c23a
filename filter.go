package pagesift

// linkOnlyFraction is the strict threshold above which an un-regioned
// sequence is deemed pure navigation and yields no output at all.
const linkOnlyFraction = 0.7

// FilteredFragment is a kept fragment plus metadata derived during
// filtering.
type FilteredFragment struct {
	Fragment
	RegionReason  string `json:"regionReason,omitempty"`
	IsMainContent bool   `json:"isMainContent"`
	WordCount     int    `json:"wordCount"`
}

// FilterBlocks removes individually low-value fragments from the pruned
// regions. When no regions survived pruning, the whole sequence is first
// screened for a link-pattern-only page (which yields nothing) and
// otherwise filtered unsegmented, with kept fragments marked as
// non-main-content.
func FilterBlocks(seq Sequence, regions []Region) []FilteredFragment {
	if len(regions) == 0 {
		if OnlyLinkPatterns(seq) {
			return nil
		}
		return filterSpan(seq, 0, len(seq)-1, "", false)
	}

	var kept []FilteredFragment
	for _, r := range regions {
		kept = append(kept, filterSpan(seq, r.Start, r.End, r.Reason, true)...)
	}
	return kept
}

// filterSpan applies the keep test to seq[start..end] inclusive.
func filterSpan(seq Sequence, start, end int, reason string, main bool) []FilteredFragment {
	var kept []FilteredFragment
	for i := start; i <= end && i < len(seq); i++ {
		f := seq[i]
		if !f.Keep() {
			continue
		}
		kept = append(kept, FilteredFragment{
			Fragment:      f,
			RegionReason:  reason,
			IsMainContent: main,
			WordCount:     WordCount(f.Title) + WordCount(f.Content),
		})
	}
	return kept
}

// OnlyLinkPatterns reports whether the sequence reads as pure navigation:
// strictly more than 70% of its text-bearing fragments have an associated
// link in the fragment itself or within the next three positions.
func OnlyLinkPatterns(seq Sequence) bool {
	var textual, linked int
	for i, f := range seq {
		if !f.TextBearing() {
			continue
		}
		textual++
		if hasNearbyLink(seq, i) {
			linked++
		}
	}
	if textual == 0 {
		return false
	}
	return float64(linked)/float64(textual) > linkOnlyFraction
}

// hasNearbyLink reports whether the fragment at i links somewhere itself
// or sits within linkProximity fragments of one that does.
func hasNearbyLink(seq Sequence, i int) bool {
	if seq[i].Link != "" {
		return true
	}
	for j := i + 1; j <= i+linkProximity && j < len(seq); j++ {
		if seq[j].Link != "" {
			return true
		}
	}
	return false
}
