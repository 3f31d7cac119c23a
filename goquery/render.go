package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// renderNoticePhrases are the notices script-dependent pages leave for
// browsers without JavaScript.
var renderNoticePhrases = []string{
	"enable javascript",
	"javascript is required",
	"javascript is disabled",
	"requires javascript",
}

// mountSelector matches the empty root nodes client-side frameworks
// hydrate into.
const mountSelector = "#root, #app, #__next, [data-reactroot]"

// minServerRenderedChars is the body text length below which a page with
// a framework mount node is considered unrendered.
const minServerRenderedChars = 150

// NeedsRender reports whether the document shows a script-dependency
// signature: an effectively empty body, an explicit JavaScript notice, or
// a framework mount node with next to no server-rendered text. Pages like
// these need the rendered fetch tier; their lightweight HTML carries no
// content to extract.
func NeedsRender(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	body := doc.Find("body").First()
	doc.Find("script, style").Remove()
	text := strings.TrimSpace(body.Text())

	if text == "" {
		return true
	}

	lower := strings.ToLower(text)
	for _, phrase := range renderNoticePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	if len(text) < minServerRenderedChars && body.Find(mountSelector).Length() > 0 {
		return true
	}

	return false
}
