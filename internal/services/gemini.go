package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ErrGateway marks any transport or API failure talking to the model. It is
// always returned as a value, never panicked, so callers can degrade to
// default records.
var ErrGateway = errors.New("model gateway failure")

// ModelGateway is the single boundary component allowed to perform external
// model I/O.
type ModelGateway interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateWithFile(ctx context.Context, prompt string, filePath string) (string, error)
}

type geminiGateway struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

func NewGeminiGateway(apiKey, modelName string, timeout time.Duration) (ModelGateway, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGateway{
		client:    client,
		modelName: modelName,
		timeout:   timeout,
	}, nil
}

// GenerateText implements ModelGateway.
func (g *geminiGateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, []*genai.Part{genai.NewPartFromText(prompt)})
}

// GenerateWithFile implements ModelGateway. The file content is attached
// inline; MIME type is inferred from the file extension.
func (g *geminiGateway) GenerateWithFile(ctx context.Context, prompt string, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read attachment: %v", ErrGateway, err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(data, mimeTypeFor(filePath)),
	}
	return g.generate(ctx, parts)
}

func (g *geminiGateway) generate(ctx context.Context, parts []*genai.Part) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrGateway)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrGateway)
	}

	return text, nil
}

// mimeTypeFor infers the attachment MIME type from the file extension.
// Unknown extensions fall back to a generic octet stream.
func mimeTypeFor(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp":
		return "image/" + strings.TrimPrefix(ext, ".")
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
