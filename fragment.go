package pagesift

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// Fragment is one ordered content unit derived from a page's markup.
// Exactly one of Title, Content, or Image carries the primary payload;
// Link optionally associates the fragment with a target URL. A fragment's
// position in its Sequence is its document order and never changes after
// the sequence is produced.
type Fragment struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Image   string `json:"image,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Link    string `json:"link,omitempty"`
}

// Sequence is the ordered, finite fragment list produced by one page fetch.
// A sequence is produced once per fetch and never mutated afterwards.
type Sequence []Fragment

// WordCount returns the number of words in s, segmented per UAX #29.
// Tokens without any letter or digit (punctuation, whitespace) do not count.
func WordCount(s string) int {
	if s == "" {
		return 0
	}
	var n int
	tokens := words.FromString(s)
	for tokens.Next() {
		if isWordlike(tokens.Value()) {
			n++
		}
	}
	return n
}

// isWordlike reports whether a UAX #29 token contains at least one letter
// or digit.
func isWordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// Words returns the word count of the fragment's primary text: the title
// when present, otherwise the content.
func (f Fragment) Words() int {
	if f.Title != "" {
		return WordCount(f.Title)
	}
	return WordCount(f.Content)
}

// ContentBearing reports whether the fragment clears the significance bar
// for opening or extending a content region: a non-empty title, or content
// of at least MinContentWords words.
func (f Fragment) ContentBearing() bool {
	if f.Title != "" {
		return true
	}
	return f.Content != "" && WordCount(f.Content) >= MinContentWords
}

// TextBearing reports whether the fragment carries any title or content
// text at all. This is the weaker bar used by the link-pattern-only check.
func (f Fragment) TextBearing() bool {
	return f.Title != "" || f.Content != ""
}

// Keep reports whether the fragment carries enough standalone value to
// survive the block filter: a non-empty title, a non-empty image, or
// content of at least MinKeepWords words. A fragment carrying only a link
// is never kept.
func (f Fragment) Keep() bool {
	if f.Title != "" || f.Image != "" {
		return true
	}
	return f.Content != "" && WordCount(f.Content) >= MinKeepWords
}
