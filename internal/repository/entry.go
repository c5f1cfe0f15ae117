package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/driftlog/backend/internal/models"
	"github.com/driftlog/backend/pkg/supabase"
)

type entryRepository struct {
	client *supabase.Client
}

// NewEntryRepository creates an entry repository backed by Supabase PostgREST.
func NewEntryRepository(client *supabase.Client) EntryRepository {
	return &entryRepository{client: client}
}

func (r *entryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	data := map[string]any{
		"user_id":        entry.UserID,
		"bedtime":        entry.Bedtime,
		"wake_up_time":   entry.WakeUpTime,
		"quality_rating": entry.QualityRating,
		"entry_date":     entry.EntryDate,
	}

	if entry.ID != "" {
		data["id"] = entry.ID
	}
	if entry.DurationHours != nil {
		data["duration_hours"] = *entry.DurationHours
	}
	if entry.SleepComments != nil {
		data["sleep_comments"] = *entry.SleepComments
	}
	if entry.DayRating != nil {
		data["day_rating"] = *entry.DayRating
	}
	if entry.Mood != nil {
		data["mood"] = string(*entry.Mood)
	}
	if entry.DayComments != nil {
		data["day_comments"] = *entry.DayComments
	}

	body, err := r.client.Insert(ctx, "entries", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entry returned")
	}

	return &entries[0], nil
}

func (r *entryRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	params := map[string]string{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
	}

	body, err := r.client.Query(ctx, "entries", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	return &entries[0], nil
}

func (r *entryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error) {
	params := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "entry_date.desc",
		"limit":   fmt.Sprintf("%d", limit),
		"offset":  fmt.Sprintf("%d", offset),
	}

	body, err := r.client.Query(ctx, "entries", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *entryRepository) GetByUserAndWindow(ctx context.Context, userID string, start, end *time.Time) ([]models.Entry, error) {
	params := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	switch {
	case start != nil && end != nil:
		params["and"] = fmt.Sprintf("(entry_date.gte.%s,entry_date.lte.%s)",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	case start != nil:
		params["entry_date"] = fmt.Sprintf("gte.%s", start.Format(time.RFC3339))
	case end != nil:
		params["entry_date"] = fmt.Sprintf("lte.%s", end.Format(time.RFC3339))
	}

	body, err := r.client.Query(ctx, "entries", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *entryRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Entry, error) {
	body, err := r.client.Update(ctx, "entries", id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entry returned")
	}

	return &entries[0], nil
}

func (r *entryRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "entries", id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
