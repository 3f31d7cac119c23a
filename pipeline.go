package pagesift

// ExtractedData is the final filtered output for one page.
type ExtractedData struct {
	Title             string             `json:"title"`
	Blocks            []FilteredFragment `json:"blocks"`
	TotalWords        int                `json:"totalWords"`
	TotalItems        int                `json:"totalItems"`
	MainContentBlocks int                `json:"mainContentBlocks"`
	MainContentWords  int                `json:"mainContentWords"`

	// LinkPatternDetected records whether any region was truncated for
	// degenerating into a dense link list.
	LinkPatternDetected bool `json:"linkPatternDetected,omitempty"`
}

// FilterContent runs the full filtering pipeline over one fragment
// sequence: region detection, link-pattern pruning, and block filtering.
// The stages never fail; an empty or unsegmentable input degrades to an
// empty or lightly filtered output. The function is pure: identical input
// always yields identical output.
func FilterContent(title string, seq Sequence) *ExtractedData {
	regions := DetectRegions(seq)
	pruned := PruneLinkPatterns(seq, regions)
	blocks := FilterBlocks(seq, pruned.Regions)

	data := &ExtractedData{
		Title:               title,
		Blocks:              blocks,
		TotalItems:          len(blocks),
		LinkPatternDetected: pruned.LinkPatternDetected,
	}
	for _, b := range blocks {
		data.TotalWords += b.WordCount
		if b.IsMainContent {
			data.MainContentBlocks++
			data.MainContentWords += b.WordCount
		}
	}
	return data
}
