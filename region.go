package pagesift

// Region reasons recorded when a region opens.
const (
	// ReasonContentRun marks a region opened by a content-bearing fragment
	// inside a document whose lead already showed qualifying content.
	ReasonContentRun = "content-run"

	// ReasonLateStart marks a first region opened with the extended window
	// because nothing in the document lead qualified, suggesting leading
	// boilerplate pushed the true content start down.
	ReasonLateStart = "late-start"
)

// Region is a contiguous index span within a Sequence believed to hold
// primary content. Start and End are inclusive; End >= Start always holds.
// Window records the lookahead/extension size chosen when the region
// opened. Regions live only for the duration of one extraction call.
type Region struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Reason string `json:"reason"`
	Window int    `json:"window"`
}

// Len returns the number of fragments the region spans.
func (r Region) Len() int {
	return r.End - r.Start + 1
}
