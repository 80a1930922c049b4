package placeholders

import (
	"fmt"
	"os"
	"strings"
)

// FooterText reads the agreement footer from the given file and joins its
// lines with single line feeds, dropping any trailing line terminator. The
// file must exist and be readable.
func FooterText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read footer text: %w", err)
	}

	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.TrimRight(text, "\n"), nil
}
