package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DocxParserService extracts plain text from a .docx file on disk.
type DocxParserService interface {
	ExtractText(filepath string) (string, error)
}

type docxParserService struct{}

func NewDocxParserService() DocxParserService {
	return &docxParserService{}
}

// ExtractText implements DocxParserService.
func (d *docxParserService) ExtractText(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat DOCX: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}

	var textBuilder strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch element := item.(type) {
		case *docx.Paragraph:
			textBuilder.WriteString(element.String())
			textBuilder.WriteString("\n")
		case *docx.Table:
			textBuilder.WriteString(element.String())
			textBuilder.WriteString("\n")
		}
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return CleanText(text), nil
}
