package convert

import "testing"

func TestAssembleDocument(t *testing.T) {
	got := AssembleDocument("A Page", "https://example.com/a", "# A Page\n\nBody text.")

	want := "# A Page\n\nURL: https://example.com/a\n\n---\n\n# A Page\n\nBody text."
	if got != want {
		t.Errorf("assembled document mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestAssembleDocumentEmptyTitle(t *testing.T) {
	got := AssembleDocument("", "https://example.com", "body")

	want := "# \n\nURL: https://example.com\n\n---\n\nbody"
	if got != want {
		t.Errorf("assembled document mismatch:\n got: %q\nwant: %q", got, want)
	}
}
