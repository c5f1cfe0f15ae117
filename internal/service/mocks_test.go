package service

import (
	"context"
	"time"

	"github.com/driftlog/backend/internal/models"
)

// mockEntryRepository is a hand-rolled EntryRepository for service tests.
type mockEntryRepository struct {
	entries map[string]*models.Entry // id -> entry

	windowEntries []models.Entry
	windowCalls   int
	lastStart     *time.Time
	lastEnd       *time.Time
	queryErr      error

	lastUpdateID     string
	lastUpdateFields map[string]any
	lastCreated      *models.Entry
	deleteCalls      int
}

func newMockEntryRepository() *mockEntryRepository {
	return &mockEntryRepository{entries: make(map[string]*models.Entry)}
}

func (m *mockEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	m.entries[entry.ID] = entry
	m.lastCreated = entry
	return entry, nil
}

func (m *mockEntryRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	if entry, ok := m.entries[id]; ok {
		return entry, nil
	}
	return nil, nil
}

func (m *mockEntryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error) {
	var result []models.Entry
	for _, entry := range m.entries {
		if entry.UserID == userID {
			result = append(result, *entry)
		}
	}
	return result, nil
}

func (m *mockEntryRepository) GetByUserAndWindow(ctx context.Context, userID string, start, end *time.Time) ([]models.Entry, error) {
	m.windowCalls++
	m.lastStart = start
	m.lastEnd = end
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.windowEntries, nil
}

func (m *mockEntryRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Entry, error) {
	m.lastUpdateID = id
	m.lastUpdateFields = fields
	if entry, ok := m.entries[id]; ok {
		return entry, nil
	}
	return nil, nil
}

func (m *mockEntryRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	delete(m.entries, id)
	return nil
}

// mockNarrator is a hand-rolled Narrator for service tests.
type mockNarrator struct {
	text        string
	err         error
	calls       int
	lastEntries []models.Entry
}

func (m *mockNarrator) Narrate(ctx context.Context, entries []models.Entry) (string, error) {
	m.calls++
	m.lastEntries = entries
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// Test data helpers.

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func moodPtr(m models.Mood) *models.Mood { return &m }

// entryOn builds a valid entry for the given calendar date with an explicit
// stored duration and ratings.
func entryOn(date string, duration float64, quality int, dayRating *int) models.Entry {
	day, _ := time.Parse("2006-01-02", date)
	return models.Entry{
		ID:            "entry-" + date,
		UserID:        "user-1",
		Bedtime:       day.Add(-2 * time.Hour), // 22:00 the prior evening
		WakeUpTime:    day.Add(6 * time.Hour),
		DurationHours: floatPtr(duration),
		QualityRating: quality,
		EntryDate:     day,
		DayRating:     dayRating,
	}
}
