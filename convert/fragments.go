package convert

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// FragmentSeparator joins independently rendered fragments into the
// final Markdown body.
const FragmentSeparator = "\n\n---\n\n"

// convertFragments handles hosts whose content lives in independent,
// structurally inconsistent subtrees. Each marked element is serialized
// and run through the shared extract+render path in document order. A
// failing element is skipped, not fatal; the call only fails when every
// element does.
func (c *Converter) convertFragments(page Page, marker string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.BodyHTML))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	selection := doc.Find(fmt.Sprintf("[%s]", marker))
	if selection.Length() == 0 {
		return nil, ErrNoMatchingElements
	}

	var fragments []string
	skipped := 0
	selection.Each(func(i int, s *goquery.Selection) {
		markup, err := goquery.OuterHtml(s)
		if err != nil {
			skipped++
			c.logger.Debug("fragment serialization failed",
				zap.Int("index", i), zap.Error(err))
			return
		}
		markdown, err := c.convertMarkup(markup, page.URL)
		if err != nil {
			skipped++
			c.logger.Debug("fragment conversion failed",
				zap.Int("index", i), zap.Error(err))
			return
		}
		fragments = append(fragments, markdown)
	})

	if len(fragments) == 0 {
		return nil, ErrEmptyMarkdown
	}
	return &Result{
		Markdown:  strings.Join(fragments, FragmentSeparator),
		Fragments: len(fragments),
		Skipped:   skipped,
	}, nil
}
