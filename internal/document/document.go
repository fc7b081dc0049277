// Package document turns statement files into plain text for the engine.
// Plain text files pass through untouched; PDFs go through text
// extraction. Scanned/image-only PDFs are out of reach here and surface
// as an extraction error rather than garbage text.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// IsQIF reports whether path looks like a QIF export
func IsQIF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".qif")
}

// ExtractText reads a statement file and returns its text content.
// PDF files are decoded row by row; everything else is read as UTF-8.
func ExtractText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read statement file: %w", err)
	}
	return string(data), nil
}

// extractPDF pulls text out of a PDF, preserving row order so transaction
// lines stay intact. The pdf library panics on some malformed files, so
// the pass is wrapped in a recover.
func extractPDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction failed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(word.S)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
