package service

import (
	"context"

	"github.com/driftlog/backend/internal/models"
)

// EntryService defines the interface for journal entry business logic
type EntryService interface {
	CreateEntry(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.Entry, error)
	GetEntry(ctx context.Context, userID, entryID string) (*models.Entry, error)
	GetUserEntries(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// InsightService defines the interface for sleep/wellbeing insight queries.
// Every method validates the window, queries the entry store exactly once,
// and derives its result from that single entry list.
type InsightService interface {
	GetSummary(ctx context.Context, userID string, window models.Window) (*models.WellbeingSummary, error)
	GetCorrelation(ctx context.Context, userID string, window models.Window) (*models.CorrelationResult, error)
	GetChartsData(ctx context.Context, userID string, window models.Window) (*models.ChartsData, error)
	GetNarratedInsight(ctx context.Context, userID string, window models.Window) (string, error)
}
