// Package narrator generates natural-language insight text for a set of
// journal entries via a remote text-generation service. Narration is a
// best-effort capability: callers must treat ErrUnavailable as "no insight",
// never as a reason to fail the surrounding request.
package narrator

import (
	"context"
	"errors"

	"github.com/driftlog/backend/internal/models"
)

// ErrUnavailable indicates the narrator could not produce usable text
// (network failure, timeout, or a malformed model response).
var ErrUnavailable = errors.New("narration unavailable")

// Narrator produces a one-to-two sentence description of the relationship
// between sleep duration and day rating in the given entries.
type Narrator interface {
	Narrate(ctx context.Context, entries []models.Entry) (string, error)
}

// Disabled is a Narrator that always reports ErrUnavailable. Used when no
// API key is configured so the numeric insight pipeline keeps working.
type Disabled struct{}

func (Disabled) Narrate(ctx context.Context, entries []models.Entry) (string, error) {
	return "", ErrUnavailable
}
