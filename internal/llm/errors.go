package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured is returned when the selected provider has no credential.
var ErrNotConfigured = errors.New("LLM provider API key not configured")

type ErrInvalidAPIKey struct {
	Err error
}

func (e *ErrInvalidAPIKey) Error() string {
	return fmt.Sprintf("invalid API key: %v", e.Err)
}

func (e *ErrInvalidAPIKey) Unwrap() error { return e.Err }

type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrContentFiltered means the provider refused the prompt or blocked the
// reply on safety grounds.
type ErrContentFiltered struct {
	Reason string
}

func (e *ErrContentFiltered) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("content filtered by provider: %s", e.Reason)
	}
	return "content filtered by provider"
}

type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the reply did not satisfy the request schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
