package convert

import (
	"regexp"
	"strings"
	"testing"
)

const articlePage = `<html>
<head><title>Example Notes - Archive</title></head>
<body>
<nav><a href="/">Home</a> <a href="/about">About</a></nav>
<article>
<h1>Title</h1>
<p>Para one. It carries enough prose for the extractor to treat it as the
main block of the document rather than boilerplate around the edges.</p>
<p>Para two. A second paragraph keeps the candidate scoring honest and
pushes the character count comfortably past the acceptance threshold.</p>
</article>
<footer>Copyright notice and unrelated boilerplate text.</footer>
</body>
</html>`

func TestConvertGenericArticle(t *testing.T) {
	conv := New(nil, Options{})

	res, err := conv.Convert(Page{
		BodyHTML: articlePage,
		Hostname: "example.com",
		Title:    "Example Notes - Archive",
		URL:      "https://example.com/notes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Readability may demote the in-content h1, so accept either level.
	if !regexp.MustCompile(`^#{1,2} Title`).MatchString(res.Markdown) {
		t.Errorf("expected markdown to start with the article heading, got %q", res.Markdown)
	}
	if !strings.Contains(res.Markdown, "Para one.") || !strings.Contains(res.Markdown, "Para two.") {
		t.Errorf("expected both paragraphs in output, got %q", res.Markdown)
	}
	if strings.ContainsAny(res.Markdown, "<>") {
		t.Errorf("expected no leftover tags, got %q", res.Markdown)
	}
	if res.Fragments != 1 || res.Skipped != 0 {
		t.Errorf("expected single fragment with no skips, got %+v", res)
	}
}

func TestConvertGenericBlankPage(t *testing.T) {
	conv := New(nil, Options{})

	testCases := []struct {
		name string
		body string
	}{
		{"WhitespaceBody", "<html><body>   \n\t  </body></html>"},
		{"EmptyBody", "<html><body></body></html>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := conv.Convert(Page{BodyHTML: tc.body, Hostname: "example.com"})
			if err == nil {
				t.Fatalf("expected error for blank page, got %+v", res)
			}
			if !IsConversionError(err) {
				t.Errorf("expected a taxonomy error, got %v", err)
			}
		})
	}
}

func TestConvertNeverReturnsBlankMarkdown(t *testing.T) {
	conv := New(nil, Options{})

	pages := []Page{
		{BodyHTML: articlePage, Hostname: "example.com"},
		{BodyHTML: "<html><body><p> </p></body></html>", Hostname: "example.com"},
		{BodyHTML: "", Hostname: ""},
	}
	for _, page := range pages {
		res, err := conv.Convert(page)
		if err != nil {
			continue
		}
		if strings.TrimSpace(res.Markdown) == "" {
			t.Errorf("blank markdown returned as success for page %q", page.BodyHTML)
		}
	}
}

func TestConvertEmptyHostnameUsesGenericPath(t *testing.T) {
	conv := New(nil, Options{})

	res, err := conv.Convert(Page{BodyHTML: articlePage})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Fragments != 1 {
		t.Errorf("expected generic single-fragment result, got %+v", res)
	}
}

func TestConvertCustomCharThreshold(t *testing.T) {
	conv := New(nil, Options{CharThreshold: 10})
	if conv.charThreshold != 10 {
		t.Errorf("expected threshold 10, got %d", conv.charThreshold)
	}

	conv = New(nil, Options{})
	if conv.charThreshold != DefaultCharThreshold {
		t.Errorf("expected default threshold %d, got %d", DefaultCharThreshold, conv.charThreshold)
	}
}
