package completion

import (
	"context"
	"errors"
)

// Package errors. Handlers map these onto the HTTP error taxonomy: a
// missing key is a deployment misconfiguration, everything else is an
// upstream failure.
var (
	ErrMissingAPIKey     = errors.New("completion provider API key not configured")
	ErrUpstream          = errors.New("completion provider request failed")
	ErrEmptyCompletion   = errors.New("completion provider returned no usable text")
	ErrMalformedResponse = errors.New("completion provider returned a malformed response")
)

// Provider is the narrow capability interface over the external LLM.
// Exactly one call per invocation, no retries; tests substitute a
// deterministic stub.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
