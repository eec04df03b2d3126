// Package export hands the serialized document to the host platform:
// the system clipboard or a Markdown file on disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// DefaultFileName is used when the caller does not pick a path.
const DefaultFileName = "document.md"

// Copy places the Markdown text on the system clipboard.
func Copy(markdown string) error {
	if err := clipboard.WriteAll(markdown); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// Write saves the Markdown text to path, creating parent directories
// as needed. An empty path falls back to DefaultFileName in the
// working directory.
func Write(markdown, path string) error {
	if path == "" {
		path = DefaultFileName
	}
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for '%s': %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return nil
}
