package convert

import (
	"fmt"

	"go.uber.org/zap"
)

// Page is the input boundary: a serialized snapshot of the document
// plus its ambient context. Read-only to the converter and not retained
// across calls.
type Page struct {
	BodyHTML string
	Hostname string
	Title    string
	URL      string
}

// Result is a successful conversion. Markdown is never blank.
// Skipped counts fragments dropped by the fragment-path tolerance
// policy; it is always zero on the generic path.
type Result struct {
	Markdown  string
	Fragments int
	Skipped   int
}

type Options struct {
	CharThreshold int
	Rules         []SiteRule
}

type Converter struct {
	router        *Router
	charThreshold int
	logger        *zap.Logger
}

func New(logger *zap.Logger, opts Options) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	threshold := opts.CharThreshold
	if threshold <= 0 {
		threshold = DefaultCharThreshold
	}
	return &Converter{
		router:        NewRouter(opts.Rules...),
		charThreshold: threshold,
		logger:        logger,
	}
}

// Route exposes the strategy decision for a hostname so callers can
// pick an appropriate snapshot source before capturing.
func (c *Converter) Route(hostname string) (Strategy, string) {
	return c.router.Route(hostname)
}

// Convert turns a page snapshot into Markdown. It is the sole entry
// point; every failure is one of the sentinel errors in errors.go and
// no panic escapes.
func (c *Converter) Convert(page Page) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()

	strategy, marker := c.router.Route(page.Hostname)
	switch strategy {
	case StrategyFragments:
		result, err = c.convertFragments(page, marker)
	default:
		result, err = c.convertGeneric(page)
	}
	if err != nil {
		c.logger.Debug("conversion failed",
			zap.String("url", page.URL),
			zap.String("strategy", strategy.String()),
			zap.Error(err))
		return nil, err
	}

	c.logger.Info("page converted",
		zap.String("url", page.URL),
		zap.String("strategy", strategy.String()),
		zap.Int("fragments", result.Fragments),
		zap.Int("skipped", result.Skipped),
		zap.Int("markdown_length", len(result.Markdown)))
	return result, nil
}

func (c *Converter) convertGeneric(page Page) (*Result, error) {
	markdown, err := c.convertMarkup(page.BodyHTML, page.URL)
	if err != nil {
		return nil, err
	}
	return &Result{Markdown: markdown, Fragments: 1}, nil
}

// convertMarkup is the shared extract+render path: both strategies feed
// their markup through it, the generic path once for the whole page and
// the fragment path once per marked element.
func (c *Converter) convertMarkup(markup, pageURL string) (string, error) {
	article, err := c.extractArticle(markup, pageURL)
	if err != nil {
		return "", err
	}
	return renderMarkdown(article)
}
