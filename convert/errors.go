package convert

import "errors"

// Taxonomy of conversion failures. Every error returned by Convert wraps
// exactly one of these; callers branch with errors.Is.
var (
	ErrNoMatchingElements = errors.New("no matching elements found")
	ErrExtractionFailed   = errors.New("extraction failed")
	ErrEmptyContent       = errors.New("empty content")
	ErrEmptyMarkdown      = errors.New("empty markdown")
	ErrUnexpected         = errors.New("unexpected conversion error")
)

// IsConversionError reports whether err belongs to the conversion
// taxonomy, as opposed to a capture or infrastructure failure.
func IsConversionError(err error) bool {
	return errors.Is(err, ErrNoMatchingElements) ||
		errors.Is(err, ErrExtractionFailed) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrEmptyMarkdown) ||
		errors.Is(err, ErrUnexpected)
}
