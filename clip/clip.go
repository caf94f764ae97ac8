package clip

import "github.com/atotto/clipboard"

// Available reports whether a clipboard backend exists on this system.
func Available() bool {
	return !clipboard.Unsupported
}

// Write places text on the system clipboard. It is the final step of a
// conversion and is only called with a fully assembled document.
func Write(text string) error {
	return clipboard.WriteAll(text)
}
