package generator

import (
	"context"
	"errors"
)

// Generator is the capability the rest of the application depends on.
// Persistence and authentication never talk to the upstream service
// directly, so they can be tested without a network dependency.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrUpstream marks any failure of the generative-language service,
// including request timeouts. Callers recover from it by substituting
// placeholder text; nothing retries automatically.
var ErrUpstream = errors.New("upstream generation failed")
