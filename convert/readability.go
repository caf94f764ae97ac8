package convert

import (
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// DefaultCharThreshold is the minimum number of characters a candidate
// block must carry before readability accepts it as main content.
const DefaultCharThreshold = 100

// extractArticle isolates the readable content of a markup string. The
// page URL is only used to resolve relative references; an unparseable
// URL degrades to no base rather than failing the extraction.
func (c *Converter) extractArticle(markup, pageURL string) (*readability.Article, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = &url.URL{}
	}

	parser := readability.NewParser()
	parser.CharThresholds = c.charThreshold

	article, err := parser.Parse(strings.NewReader(markup), base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if article.Node == nil && strings.TrimSpace(article.Content) == "" {
		return nil, ErrEmptyContent
	}
	return &article, nil
}
