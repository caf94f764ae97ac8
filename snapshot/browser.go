package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"clipmark/convert"
)

const defaultBrowserTimeout = 60 * time.Second

// BrowserSource captures pages through a headless Chrome instance. It
// is the only source that sees client-rendered markup, so fragment
// hosts must be captured through it.
type BrowserSource struct {
	logger  *zap.Logger
	options []chromedp.ExecAllocatorOption
	timeout time.Duration
}

func NewBrowserSource(logger *zap.Logger, proxyURL string, timeout time.Duration) *BrowserSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultBrowserTimeout
	}

	options := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.Flag("accept-language", "en-US,en;q=0.9"),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-extensions", ""),
	)
	if proxyURL != "" {
		options = append(options, chromedp.ProxyServer(proxyURL))
	}

	return &BrowserSource{
		logger:  logger,
		options: options,
		timeout: timeout,
	}
}

func (b *BrowserSource) Name() string { return "browser" }

func (b *BrowserSource) Capture(ctx context.Context, pageURL string) (convert.Page, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, b.options...)
	defer allocCancel()
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()
	timeoutCtx, timeoutCancel := context.WithTimeout(taskCtx, b.timeout)
	defer timeoutCancel()

	b.logger.Info("capturing page", zap.String("url", pageURL), zap.String("source", b.Name()))

	var bodyHTML, title, currentURL string
	err := chromedp.Run(timeoutCtx,
		network.Enable(),
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Title(&title),
		chromedp.Location(&currentURL),
		chromedp.OuterHTML("body", &bodyHTML, chromedp.ByQuery),
	)
	if err != nil {
		b.logger.Error("browser capture failed", zap.String("url", pageURL), zap.Error(err))
		return convert.Page{}, fmt.Errorf("browser capture %s: %w", pageURL, err)
	}

	b.logger.Info("page captured",
		zap.String("url", currentURL),
		zap.String("title", title),
		zap.Int("dom_length", len(bodyHTML)))

	return convert.Page{
		BodyHTML: bodyHTML,
		Hostname: hostnameOf(currentURL),
		Title:    title,
		URL:      currentURL,
	}, nil
}
