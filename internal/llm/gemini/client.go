package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/smartstudy-ai/smartstudy-backend/internal/common"
	"github.com/smartstudy-ai/smartstudy-backend/internal/extract"
	"github.com/smartstudy-ai/smartstudy-backend/internal/llm"
)

// Client implements llm.Generator on top of the Gemini SDK.
type Client struct {
	cfg   Config
	genai *genai.Client
	log   *slog.Logger
}

// NewClient builds a Gemini client. An explicit API key from the config wins;
// otherwise the SDK falls back to ambient credentials (ADC), mirroring how
// the service runs on Cloud Run.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	cfg = cfg.withDefaults()
	log := defaultLogger(logger)

	var opts []option.ClientOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
		log.Info("llm.client.init", "auth", "api_key", "model", cfg.Model)
	} else {
		log.Info("llm.client.init", "auth", "adc", "model", cfg.Model)
	}

	gc, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{cfg: cfg, genai: gc, log: log}, nil
}

// Close releases the underlying SDK connection.
func (c *Client) Close() error {
	return c.genai.Close()
}

// Generate sends a text prompt and returns the provider-neutral response.
func (c *Client) Generate(ctx context.Context, prompt string, maxOutputTokens int32) (*extract.Response, error) {
	return c.generate(ctx, maxOutputTokens, genai.Text(prompt))
}

// GenerateWithFile sends a binary attachment plus a prompt. The SDK expects
// the file part first, then the instruction text.
func (c *Client) GenerateWithFile(ctx context.Context, file llm.FileAttachment, prompt string, maxOutputTokens int32) (*extract.Response, error) {
	if len(file.Data) == 0 {
		return nil, errors.New("file attachment is empty")
	}
	blob := genai.Blob{MIMEType: file.MIMEType, Data: file.Data}
	return c.generate(ctx, maxOutputTokens, blob, genai.Text(prompt))
}

func (c *Client) generate(ctx context.Context, maxOutputTokens int32, parts ...genai.Part) (*extract.Response, error) {
	rid := uuid.New().String()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	model := c.genai.GenerativeModel(c.cfg.Model)
	model.SetTemperature(c.cfg.Temperature)
	if maxOutputTokens > 0 {
		model.SetMaxOutputTokens(maxOutputTokens)
	}

	c.log.Info("llm.generate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"max_output_tokens", maxOutputTokens,
		"parts", len(parts),
	)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		c.log.Error("llm.generate.error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("gemini generate: %w", errors.Join(common.ErrUpstream, err))
	}

	out := toResponse(resp)
	c.log.Info("llm.generate.ok",
		"req_id", rid,
		"candidates", len(out.Candidates),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ListModels enumerates the models available to the configured credentials.
func (c *Client) ListModels(ctx context.Context) ([]llm.ModelInfo, error) {
	var out []llm.ModelInfo
	it := c.genai.ListModels(ctx)
	for {
		m, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list models: %w", errors.Join(common.ErrUpstream, err))
		}
		out = append(out, llm.ModelInfo{
			Name:             m.Name,
			DisplayName:      m.DisplayName,
			Description:      m.Description,
			InputTokenLimit:  m.InputTokenLimit,
			OutputTokenLimit: m.OutputTokenLimit,
		})
	}
	return out, nil
}

// toResponse flattens the SDK response into the pipeline's view of it. Only
// text parts carry over; other modalities have no place in the pipeline.
func toResponse(resp *genai.GenerateContentResponse) *extract.Response {
	if resp == nil {
		return nil
	}
	out := &extract.Response{}
	for _, cand := range resp.Candidates {
		if cand == nil {
			continue
		}
		c := extract.Candidate{FinishReason: cand.FinishReason.String()}
		if cand.Content != nil {
			for _, p := range cand.Content.Parts {
				if t, ok := p.(genai.Text); ok {
					c.Parts = append(c.Parts, string(t))
				}
			}
		}
		out.Candidates = append(out.Candidates, c)
	}
	return out
}
