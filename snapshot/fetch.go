package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"clipmark/convert"
)

const defaultFetchTimeout = 30 * time.Second

// FetchSource captures pages with a plain HTTP request. Cheaper than
// the browser source but blind to client-rendered markup.
type FetchSource struct {
	logger   *zap.Logger
	proxyURL string
	timeout  time.Duration
}

func NewFetchSource(logger *zap.Logger, proxyURL string, timeout time.Duration) *FetchSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &FetchSource{
		logger:   logger,
		proxyURL: proxyURL,
		timeout:  timeout,
	}
}

func (f *FetchSource) Name() string { return "fetch" }

func (f *FetchSource) Capture(ctx context.Context, pageURL string) (convert.Page, error) {
	collector := colly.NewCollector(
		colly.UserAgent("clipmark/1.0"),
		colly.MaxDepth(1),
		colly.StdlibContext(ctx),
	)
	collector.SetRequestTimeout(f.timeout)
	if f.proxyURL != "" {
		if err := collector.SetProxy(f.proxyURL); err != nil {
			return convert.Page{}, fmt.Errorf("set proxy %s: %w", f.proxyURL, err)
		}
	}

	var body []byte
	var finalURL string
	var fetchErr error
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
		finalURL = r.Request.URL.String()
	})
	collector.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	f.logger.Info("capturing page", zap.String("url", pageURL), zap.String("source", f.Name()))

	if err := collector.Visit(pageURL); err != nil {
		return convert.Page{}, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	collector.Wait()

	if fetchErr != nil {
		f.logger.Error("fetch failed", zap.String("url", pageURL), zap.Error(fetchErr))
		return convert.Page{}, fmt.Errorf("fetch %s: %w", pageURL, fetchErr)
	}
	if len(body) == 0 {
		return convert.Page{}, fmt.Errorf("fetch %s: empty response", pageURL)
	}
	if finalURL == "" {
		finalURL = pageURL
	}

	page := convert.Page{
		BodyHTML: string(body),
		Hostname: hostnameOf(finalURL),
		Title:    pageTitle(body),
		URL:      finalURL,
	}

	f.logger.Info("page captured",
		zap.String("url", finalURL),
		zap.String("title", page.Title),
		zap.Int("dom_length", len(page.BodyHTML)))
	return page, nil
}

func pageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
