// Package resume turns an uploaded PDF into a structured candidate
// profile: text extraction via pdftotext, then LLM field extraction
// with a regex fallback so an upload never hard-fails.
package resume

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoText means the PDF produced no extractable text, typically a
// scanned image-only document.
var ErrNoText = fmt.Errorf("no text could be extracted from PDF")

// ExtractText runs pdftotext over the PDF bytes and returns the plain
// text. Requires the poppler-utils pdftotext binary on PATH.
func ExtractText(ctx context.Context, pdf []byte) (string, error) {
	tmp, err := os.CreateTemp("", "intervet-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, "pdftotext", tmp.Name(), "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}

	text := strings.TrimSpace(string(output))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
