package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.5-flash",
	"gemini-pro":   "gemini-2.5-pro",
}

type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := resolveModel(cfg.Model, geminiModels)
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), buildGeminiConfig(req))
	if err != nil {
		return nil, mapGeminiError(err)
	}
	if err := checkGeminiBlocked(result); err != nil {
		return nil, err
	}

	resp := &Response{
		Text:  result.Text(),
		Model: p.model,
	}
	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}

	if req.Schema != nil {
		payload, err := ValidateJSON(req.Schema, []byte(resp.Text))
		if err != nil {
			return nil, err
		}
		resp.Text = string(payload)
	}
	return resp, nil
}

func (p *GeminiProvider) Stream(ctx context.Context, req Request, onChunk func(string) error) error {
	for result, err := range p.client.Models.GenerateContentStream(ctx, p.model, genai.Text(req.Prompt), buildGeminiConfig(req)) {
		if err != nil {
			return mapGeminiError(err)
		}
		if err := checkGeminiBlocked(result); err != nil {
			return err
		}
		if text := result.Text(); text != "" {
			if err := onChunk(text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func buildGeminiConfig(req Request) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     req.Options.Temperature,
		TopK:            req.Options.TopK,
		TopP:            req.Options.TopP,
		MaxOutputTokens: req.Options.MaxOutputTokens,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	return config
}

func checkGeminiBlocked(result *genai.GenerateContentResponse) error {
	if result == nil {
		return &ErrProviderUnavailable{Err: errors.New("empty response from Gemini")}
	}
	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" {
		reason := string(fb.BlockReason)
		if fb.BlockReasonMessage != "" {
			reason = fb.BlockReasonMessage
		}
		return &ErrContentFiltered{Reason: reason}
	}
	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == "SAFETY" {
		return &ErrContentFiltered{Reason: "SAFETY"}
	}
	return nil
}

func mapGeminiError(err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}
	return mapStatus(code, err)
}

// mapStatus classifies provider HTTP status codes into the shared error kinds.
func mapStatus(code int, err error) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &ErrInvalidAPIKey{Err: err}
	case code == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so direct model IDs keep working.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
