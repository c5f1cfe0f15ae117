package repository

import (
	"context"
	"time"

	"github.com/driftlog/backend/internal/models"
)

// EntryRepository defines the interface for journal entry data access
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	GetByID(ctx context.Context, id string) (*models.Entry, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error)
	// GetByUserAndWindow returns a user's entries bounded by [start, end]
	// inclusive on entry_date. A nil bound means unbounded on that side.
	// No ordering is guaranteed; consumers sort as needed.
	GetByUserAndWindow(ctx context.Context, userID string, start, end *time.Time) ([]models.Entry, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Entry, error)
	Delete(ctx context.Context, id string) error
}
