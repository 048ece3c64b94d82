package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".txt":  {},
}

// StorageService persists uploaded documents under a flat upload directory,
// renaming each file to a unique name so concurrent uploads never collide.
type StorageService interface {
	SaveUpload(file *multipart.FileHeader) (string, string, error)
	SaveBytes(filename string, content []byte) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveUpload stores a multipart upload and returns the generated filename
// and its full path.
func (s *storageService) SaveUpload(file *multipart.FileHeader) (string, string, error) {
	filename, filePath, err := s.prepare(file.Filename)
	if err != nil {
		return "", "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return filename, filePath, nil
}

// SaveBytes stores decoded file content, for the base64 upload path.
func (s *storageService) SaveBytes(originalName string, content []byte) (string, string, error) {
	filename, filePath, err := s.prepare(originalName)
	if err != nil {
		return "", "", err
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return filename, filePath, nil
}

// prepare validates the extension and generates the unique target filename.
func (s *storageService) prepare(originalName string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", "", fmt.Errorf("unsupported file extension: %s", ext)
	}

	filename := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	return filename, filepath.Join(s.uploadPath, filename), nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
