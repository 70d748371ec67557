package llm

import (
	"context"
	"errors"
	"time"
)

var ErrStreamingUnsupported = errors.New("provider does not support streaming")

type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout bounds each call with its own deadline. A zero timeout returns
// p unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: timeout}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) Stream(ctx context.Context, req Request, onChunk func(string) error) error {
	streamer, ok := t.inner.(Streamer)
	if !ok {
		return ErrStreamingUnsupported
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return streamer.Stream(ctx, req, onChunk)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
