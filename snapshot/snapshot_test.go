package snapshot

import "testing"

func TestHostnameOf(t *testing.T) {
	testCases := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{"Plain", "https://example.com/page", "example.com"},
		{"WithPort", "http://localhost:8080/x", "localhost"},
		{"Subdomain", "https://www.claude.ai/chat/1", "www.claude.ai"},
		{"Empty", "", ""},
		{"Garbage", "://not a url", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hostnameOf(tc.rawURL); got != tc.expected {
				t.Errorf("hostnameOf(%q) = %q, want %q", tc.rawURL, got, tc.expected)
			}
		})
	}
}

func TestPageTitle(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{"Simple", "<html><head><title>Hello</title></head><body></body></html>", "Hello"},
		{"Whitespace", "<html><head><title>\n  Padded \t</title></head></html>", "Padded"},
		{"Missing", "<html><body><p>no head</p></body></html>", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pageTitle([]byte(tc.body)); got != tc.expected {
				t.Errorf("pageTitle = %q, want %q", got, tc.expected)
			}
		})
	}
}
