package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Jane Doe  \n\n\n  Engineer  \n"), 0644))

	ingester := NewDocumentIngester(&stubGateway{}, NewPDFParserService(), NewDocxParserService())

	doc, err := ingester.Ingest(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "txt", doc.FileType)
	assert.Equal(t, path, doc.FilePath)
	assert.Equal(t, "Jane Doe\nEngineer", doc.FullText)
}

func TestIngestMissingFile(t *testing.T) {
	ingester := NewDocumentIngester(&stubGateway{}, NewPDFParserService(), NewDocxParserService())

	_, err := ingester.Ingest(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n   \n b \n"))
	assert.Equal(t, "", CleanText("   \n \n"))
}
