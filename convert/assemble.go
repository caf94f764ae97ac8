package convert

import "fmt"

// DocumentSeparator sits between the title/URL header and the body.
const DocumentSeparator = "\n\n---\n\n"

// AssembleDocument produces the final clipboard text. The header format
// is part of the external contract and must be reproduced bit-for-bit.
func AssembleDocument(title, url, markdown string) string {
	return fmt.Sprintf("# %s\n\nURL: %s%s%s", title, url, DocumentSeparator, markdown)
}
