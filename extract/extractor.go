package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector names the tags whose visible text is considered readable
// content: article containers, heading levels 1-3, paragraphs, list items.
const blockSelector = "article, h1, h2, h3, p, li"

// Blocks extracts the visible text of content-bearing tags in document
// order. Each block is trimmed and internal whitespace runs are collapsed;
// blocks with no text are dropped. Returns nil when the markup cannot be
// parsed at all.
func Blocks(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

// Title returns the document's title element text, or fallback (typically
// the page URL) when the title is absent or empty.
func Title(markup, fallback string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return fallback
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return fallback
	}
	return title
}

// Excerpt joins blocks with single spaces and truncates the result to at
// most limit runes. A non-positive limit returns the full joined text.
func Excerpt(blocks []string, limit int) string {
	joined := strings.Join(blocks, " ")
	if limit <= 0 {
		return joined
	}
	runes := []rune(joined)
	if len(runes) <= limit {
		return joined
	}
	return string(runes[:limit])
}
