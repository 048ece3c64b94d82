package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBytesAndDelete(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	filename, filePath, err := storage.SaveBytes("resume.txt", []byte("plain text resume"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".txt"))
	assert.Equal(t, filePath, storage.GetFilePath(filename))

	content, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "plain text resume", string(content))

	require.NoError(t, storage.DeleteFile(filename))
	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveBytesRejectsUnsupportedExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	_, _, err := storage.SaveBytes("malware.exe", []byte("nope"))
	assert.Error(t, err)

	_, _, err = storage.SaveBytes("noextension", []byte("nope"))
	assert.Error(t, err)
}

func TestSaveBytesUniqueNames(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	first, _, err := storage.SaveBytes("resume.pdf", []byte("a"))
	require.NoError(t, err)
	second, _, err := storage.SaveBytes("resume.pdf", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(filepath.Base(first), "resume_"))
}
