package llm

import "context"

// Provider is the single-call text generation abstraction used by every
// feature. Implementations return the model's free text untouched.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Streamer is implemented by providers that can relay partial output.
// The callback receives each chunk in order; returning an error stops the
// stream and is propagated to the caller.
type Streamer interface {
	Stream(ctx context.Context, req Request, onChunk func(chunk string) error) error
}

type Request struct {
	// System is optional. Quiz generation sends everything in Prompt.
	System  string
	Prompt  string
	Options GenerationOptions

	// Schema, when set, is checked against the reply after generation.
	// Providers never switch to their native structured-output mode.
	Schema *Schema
}

// GenerationOptions mirrors the knobs exposed by the Gemini API. Nil
// pointers leave the provider default in place.
type GenerationOptions struct {
	Temperature     *float32
	TopK            *float32
	TopP            *float32
	MaxOutputTokens int32
}

type Response struct {
	Text  string
	Model string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func Float32(v float32) *float32 {
	return &v
}
