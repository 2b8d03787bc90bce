// Package ingestion cleans extracted document text before analysis.
// Binary-format extraction (PDF/DOCX) happens upstream; this package only
// receives plain text and tidies it while preserving the line structure
// that section detection depends on.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	reSpaces     = regexp.MustCompile(`[ \t]+`)
	reBlankLines = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and whitespace while keeping line
// boundaries intact. Headings and bullet lines survive unchanged apart
// from whitespace normalization, so downstream section detection still
// sees them at line level.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = reBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses runs of spaces and tabs.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	return reSpaces.ReplaceAllString(line, " ")
}

// ReadFile reads a plain-text document from disk and cleans it. A missing
// file is an error; empty content is not, since an empty document is a
// valid (if low-information) analysis target.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return CleanText(string(content)), nil
}
