package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	suffixPDF = ".pdf"
	suffixTXT = ".txt"
)

var (
	// ErrUnsupportedType is returned for filenames without a recognized suffix.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrInvalidEncoding is returned when a text file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// Text extracts plain text from an uploaded payload, dispatching on the
// declared filename suffix. The suffix check is case-sensitive: .pdf and .txt
// are recognized, everything else fails with ErrUnsupportedType.
//
// The result may be empty (e.g. a PDF with no extractable text); callers that
// require content must check for that themselves.
func Text(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch {
	case strings.HasSuffix(fileName, suffixPDF):
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", fileName, err)
		}
		return text, nil
	case strings.HasSuffix(fileName, suffixTXT):
		if !utf8.Valid(data) {
			return "", fmt.Errorf("extract %s: %w", fileName, ErrInvalidEncoding)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("extract %s: %w", fileName, ErrUnsupportedType)
	}
}

// extractPDF walks pages in order and concatenates their plain text. A page
// that yields no text (or fails text extraction) contributes an empty string
// so the concatenation itself never fails.
func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}
