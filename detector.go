package pagesift

// Word-count bars for the filtering pipeline. The 15-word region bar and
// the 20-word keep bar are deliberate: a smaller bar lets captions and
// button labels open regions and floods the output with noise.
const (
	// MinContentWords is the minimum content word count for a fragment to
	// open or extend a region. Titles qualify regardless of length.
	MinContentWords = 15

	// MinKeepWords is the minimum content word count for a title-less,
	// image-less fragment to survive the block filter.
	MinKeepWords = 20
)

// Region scan tuning. True article content is bursty: brief non-qualifying
// gaps (captions, short asides) must not split one article into many
// regions, but a sustained silence with no further qualifying fragment
// legitimately ends one.
const (
	baseWindow     = 10
	extendedWindow = 20
	leadProbe      = 10
	lookaheadSpan  = 10
)

// regionScan is the accumulator threaded through the detection loop. It is
// the only mutable state the scan needs: the currently open span, the
// window it extends by, and the index of the last qualifying fragment.
type regionScan struct {
	open      bool
	start     int
	end       int
	window    int
	lastValid int
	reason    string
}

// DetectRegions scans the sequence left to right and returns candidate
// regions likely to hold primary content. A single forward scan guarantees
// the returned regions never overlap.
//
// If none of the first ten fragments is content-bearing, the first region
// to open uses the extended window; every other region uses the base
// window. While a region is open each qualifying fragment pushes the end
// out to cover its own window; when the scan reaches the current end, a
// bounded lookahead past the last qualifying fragment decides whether the
// region keeps growing or closes.
func DetectRegions(seq Sequence) []Region {
	if len(seq) == 0 {
		return nil
	}

	firstWindow := baseWindow
	if !leadHasContent(seq) {
		firstWindow = extendedWindow
	}

	var regions []Region
	var scan regionScan

	for i := 0; i < len(seq); i++ {
		f := seq[i]

		if !scan.open {
			if !f.ContentBearing() {
				continue
			}
			window, reason := baseWindow, ReasonContentRun
			if len(regions) == 0 && firstWindow == extendedWindow {
				window, reason = extendedWindow, ReasonLateStart
			}
			scan = regionScan{
				open:      true,
				start:     i,
				end:       clampIndex(i+window-1, len(seq)),
				window:    window,
				lastValid: i,
				reason:    reason,
			}
			continue
		}

		if f.ContentBearing() {
			if end := clampIndex(i+scan.window-1, len(seq)); end > scan.end {
				scan.end = end
			}
			scan.lastValid = i
		}

		if i < scan.end {
			continue
		}

		// Reached the region's current end. Probe a bounded span past the
		// last qualifying fragment before giving up on this region.
		if j, ok := nextContentBearing(seq, scan.lastValid+1, lookaheadSpan); ok {
			if end := clampIndex(j+scan.window-1, len(seq)); end > scan.end {
				scan.end = end
			}
			scan.lastValid = j
			continue
		}

		regions = append(regions, scan.region())
		scan = regionScan{}
	}

	if scan.open {
		regions = append(regions, scan.region())
	}

	return regions
}

// leadHasContent reports whether any of the first leadProbe fragments is
// content-bearing.
func leadHasContent(seq Sequence) bool {
	probe := leadProbe
	if probe > len(seq) {
		probe = len(seq)
	}
	for i := 0; i < probe; i++ {
		if seq[i].ContentBearing() {
			return true
		}
	}
	return false
}

// nextContentBearing returns the index of the first content-bearing
// fragment in seq[from:from+span], if any.
func nextContentBearing(seq Sequence, from, span int) (int, bool) {
	for j := from; j < from+span && j < len(seq); j++ {
		if seq[j].ContentBearing() {
			return j, true
		}
	}
	return 0, false
}

func (s regionScan) region() Region {
	return Region{Start: s.start, End: s.end, Reason: s.reason, Window: s.window}
}

// clampIndex clips an inclusive index to the last valid position of a
// sequence of length n.
func clampIndex(i, n int) int {
	if i > n-1 {
		return n - 1
	}
	return i
}
