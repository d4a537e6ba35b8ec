package llm

import (
	"context"

	"github.com/smartstudy-ai/smartstudy-backend/internal/extract"
)

// FileAttachment is a binary payload forwarded to the model alongside a prompt.
type FileAttachment struct {
	Data     []byte
	MIMEType string
}

// ModelInfo describes one model available to the configured client.
type ModelInfo struct {
	Name             string `json:"name"`
	DisplayName      string `json:"display_name,omitempty"`
	Description      string `json:"description,omitempty"`
	InputTokenLimit  int32  `json:"input_token_limit,omitempty"`
	OutputTokenLimit int32  `json:"output_token_limit,omitempty"`
}

// Generator is the interface the HTTP service depends on. The model call is a
// black box: it returns a response structure or fails, and transport policy
// (retries, rate limits) lives behind this boundary.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxOutputTokens int32) (*extract.Response, error)
	GenerateWithFile(ctx context.Context, file FileAttachment, prompt string, maxOutputTokens int32) (*extract.Response, error)
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
