package snapshot

import (
	"context"
	"net/url"

	"clipmark/convert"
)

// Source captures a page snapshot for conversion.
type Source interface {
	Name() string
	Capture(ctx context.Context, pageURL string) (convert.Page, error)
}

func hostnameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
