package convert

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// renderMarkdown converts an extracted article into Markdown. The
// article's parsed node is preferred over its serialized content so the
// renderer and the extractor agree on the tree. Blank output after
// trimming is an error, never an empty success.
func renderMarkdown(article *readability.Article) (string, error) {
	markup := article.Content
	if article.Node != nil {
		rendered, err := renderNodeToString(article.Node)
		if err == nil {
			markup = rendered
		}
	}
	if strings.TrimSpace(markup) == "" {
		return "", ErrEmptyContent
	}

	markdown, err := htmltomarkdown.ConvertString(markup)
	if err != nil {
		return "", fmt.Errorf("%w: render: %v", ErrUnexpected, err)
	}

	markdown = strings.TrimSpace(blankRuns.ReplaceAllString(markdown, "\n\n"))
	if markdown == "" {
		return "", ErrEmptyMarkdown
	}
	return markdown, nil
}

func renderNodeToString(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
