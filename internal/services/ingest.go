package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// IngestedDocument is the extraction result for one uploaded file.
type IngestedDocument struct {
	FilePath string
	FileType string
	FullText string
}

// DocumentIngester turns an uploaded file into plain resume text. PDFs go
// through model-backed transcription first because it handles scanned and
// oddly laid out documents, with the local extractor as fallback. DOCX and
// plain text never need the model.
type DocumentIngester interface {
	Ingest(ctx context.Context, filePath string) (IngestedDocument, error)
}

type documentIngester struct {
	gateway    ModelGateway
	pdfParser  PDFParserService
	docxParser DocxParserService
	prompts    *PromptBuilder
}

func NewDocumentIngester(gateway ModelGateway, pdfParser PDFParserService, docxParser DocxParserService) DocumentIngester {
	return &documentIngester{
		gateway:    gateway,
		pdfParser:  pdfParser,
		docxParser: docxParser,
		prompts:    NewPromptBuilder(),
	}
}

// Ingest implements DocumentIngester.
func (d *documentIngester) Ingest(ctx context.Context, filePath string) (IngestedDocument, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	doc := IngestedDocument{
		FilePath: filePath,
		FileType: strings.TrimPrefix(ext, "."),
	}

	var text string
	var err error

	switch ext {
	case ".pdf":
		text, err = d.extractPDF(ctx, filePath)
	case ".docx":
		text, err = d.docxParser.ExtractText(filePath)
	default:
		var raw []byte
		raw, err = os.ReadFile(filePath)
		if err == nil {
			text = CleanText(string(raw))
		}
	}
	if err != nil {
		return doc, fmt.Errorf("failed to extract text from %s: %w", filePath, err)
	}

	doc.FullText = text
	return doc, nil
}

// extractPDF tries model transcription first and falls back to local parsing.
func (d *documentIngester) extractPDF(ctx context.Context, filePath string) (string, error) {
	text, err := d.gateway.GenerateWithFile(ctx, d.prompts.BuildPDFExtractionPrompt(), filePath)
	if err == nil && strings.TrimSpace(text) != "" {
		return CleanText(text), nil
	}
	if err != nil {
		log.Printf("⚠️  Model transcription failed, falling back to local extraction: %v\n", err)
	}

	return d.pdfParser.ExtractText(filePath)
}
