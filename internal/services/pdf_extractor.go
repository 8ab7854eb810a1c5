package services

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResumeTextExtractor decodes an uploaded PDF into plain text. Extraction is
// best-effort: corrupt, encrypted or non-PDF content yields an empty string,
// never an error, and callers must tolerate empty results.
type ResumeTextExtractor interface {
	ExtractText(data []byte) string
}

type pdfTextExtractor struct{}

func NewPDFTextExtractor() ResumeTextExtractor {
	return &pdfTextExtractor{}
}

// ExtractText implements ResumeTextExtractor. Pages are concatenated with
// newline separators; pages without extractable text contribute nothing.
func (p *pdfTextExtractor) ExtractText(data []byte) (text string) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String())
}
