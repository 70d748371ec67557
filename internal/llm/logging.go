package llm

import (
	"context"
	"time"

	"github.com/saulo-duarte/quizgen/internal/config"
	"github.com/sirupsen/logrus"
)

// LoggingProvider logs one entry per provider call. Streaming calls are
// passed through when the inner provider supports them.
type LoggingProvider struct {
	inner Provider
}

func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	log := config.WithContext(ctx).WithField("model", l.inner.ModelID())
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	log = log.WithField("latency_ms", time.Since(start).Milliseconds())
	if err != nil {
		log.WithError(err).Warn("LLM request failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
		"reply_chars":   len(resp.Text),
	}).Info("LLM request completed")
	log.Debugf("LLM raw reply:\n%s", resp.Text)
	return resp, nil
}

func (l *LoggingProvider) Stream(ctx context.Context, req Request, onChunk func(string) error) error {
	streamer, ok := l.inner.(Streamer)
	if !ok {
		return ErrStreamingUnsupported
	}

	log := config.WithContext(ctx).WithField("model", l.inner.ModelID())
	start := time.Now()
	chunks := 0

	err := streamer.Stream(ctx, req, func(chunk string) error {
		chunks++
		return onChunk(chunk)
	})

	log = log.WithFields(logrus.Fields{
		"latency_ms": time.Since(start).Milliseconds(),
		"chunks":     chunks,
	})
	if err != nil {
		log.WithError(err).Warn("LLM stream failed")
		return err
	}
	log.Info("LLM stream completed")
	return nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
