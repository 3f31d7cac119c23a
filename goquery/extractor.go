// Package goquery converts page markup into the ordered fragment sequence
// consumed by the filtering pipeline. Headings become title fragments,
// paragraphs and list items become content fragments with their inner
// markup normalized to markdown, and images become image fragments. A
// fragment inherits the link of the anchor it sits inside or contains.
package goquery

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesift"
)

// blockSelector matches the elements that produce fragments, in document
// order.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, img, blockquote, pre"

// Ensure Extractor implements pagesift.FragmentExtractor at compile time.
var _ pagesift.FragmentExtractor = (*Extractor)(nil)

// Extractor walks a page's DOM and produces its fragment sequence.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Extractor{conv: conv}
}

// Extract parses the HTML and returns the page title plus the ordered
// fragment sequence. baseURL resolves relative links and image sources.
func (e *Extractor) Extract(html string, baseURL string) (*pagesift.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	page := &pagesift.Page{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	doc.Find("script, style, noscript, template").Remove()

	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Nested block elements produce their own fragments; skipping
		// containers avoids emitting the same text twice.
		if sel.Find(blockSelector).Length() > 0 {
			return
		}

		frag, ok := e.fragment(sel, base)
		if !ok {
			return
		}
		page.Fragments = append(page.Fragments, frag)
	})

	return page, nil
}

// fragment converts one selected element into a Fragment.
func (e *Extractor) fragment(sel *goquery.Selection, base *url.URL) (pagesift.Fragment, bool) {
	link := nearestLink(sel, base)

	if goquery.NodeName(sel) == "img" {
		src, _ := sel.Attr("src")
		src = resolveRef(base, src)
		if src == "" {
			return pagesift.Fragment{}, false
		}
		alt, _ := sel.Attr("alt")
		return pagesift.Fragment{Image: src, Alt: strings.TrimSpace(alt), Link: link}, true
	}

	if isHeading(goquery.NodeName(sel)) {
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return pagesift.Fragment{}, false
		}
		return pagesift.Fragment{Title: title, Link: link}, true
	}

	content := e.markdown(sel)
	if content == "" {
		if link == "" {
			return pagesift.Fragment{}, false
		}
		// A bare anchor still marks link proximity for the pruner.
		return pagesift.Fragment{Link: link}, true
	}
	return pagesift.Fragment{Content: content, Link: link}, true
}

// markdown renders the element's inner markup as markdown, falling back
// to plain text when conversion fails.
func (e *Extractor) markdown(sel *goquery.Selection) string {
	inner, err := sel.Html()
	if err != nil || strings.TrimSpace(inner) == "" {
		return strings.TrimSpace(sel.Text())
	}
	md, err := e.conv.ConvertString(inner)
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}
	return strings.TrimSpace(md)
}

// nearestLink returns the href of the anchor the element sits inside, or
// of the first anchor it contains, resolved against base.
func nearestLink(sel *goquery.Selection, base *url.URL) string {
	if href, ok := sel.Closest("a[href]").Attr("href"); ok {
		return resolveRef(base, href)
	}
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		return resolveRef(base, href)
	}
	return ""
}

// resolveRef resolves a possibly-relative reference against base,
// discarding anything that is not HTTP.
func resolveRef(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(u)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

func isHeading(name string) bool {
	switch name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}
