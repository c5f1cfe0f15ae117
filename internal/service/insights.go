package service

import (
	"context"
	"fmt"
	"time"

	"github.com/driftlog/backend/internal/logger"
	"github.com/driftlog/backend/internal/models"
	"github.com/driftlog/backend/internal/narrator"
	"github.com/driftlog/backend/internal/repository"
)

// insightUnavailableMessage is returned in place of narrated text when the
// narrator fails. Numeric results are unaffected.
const insightUnavailableMessage = "Insight is currently unavailable."

type insightService struct {
	entryRepo repository.EntryRepository
	narrator  narrator.Narrator

	// now is swappable for tests
	now func() time.Time
}

// NewInsightService creates a new insight service
func NewInsightService(entryRepo repository.EntryRepository, n narrator.Narrator) InsightService {
	return &insightService{
		entryRepo: entryRepo,
		narrator:  n,
		now:       time.Now,
	}
}

func (s *insightService) GetSummary(ctx context.Context, userID string, window models.Window) (*models.WellbeingSummary, error) {
	entries, err := s.entriesForWindow(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	summary := buildWellbeingSummary(entries)
	return &summary, nil
}

func (s *insightService) GetCorrelation(ctx context.Context, userID string, window models.Window) (*models.CorrelationResult, error) {
	entries, err := s.entriesForWindow(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	result := computeCorrelation(entries)
	return &result, nil
}

func (s *insightService) GetChartsData(ctx context.Context, userID string, window models.Window) (*models.ChartsData, error) {
	// One store round trip; every series below is derived from this list.
	entries, err := s.entriesForWindow(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	correlation := computeCorrelation(entries)

	charts := &models.ChartsData{
		MoodChartData:          buildMoodSeries(entries),
		SleepDurationChartData: buildSleepSeries(entries),
		CorrelationChartData:   correlation.DataPoints,
	}

	// Narration is the only fallible external call in the pipeline. Its
	// failure degrades the insight text but never the numeric sections.
	insight, err := s.narrator.Narrate(ctx, entries)
	if err != nil {
		logger.Ctx(ctx).Warn("narrator unavailable, serving placeholder insight",
			logger.Err(err),
			logger.String("user_id", userID),
		)
		insight = insightUnavailableMessage
	}
	charts.NarratedInsight = insight

	return charts, nil
}

func (s *insightService) GetNarratedInsight(ctx context.Context, userID string, window models.Window) (string, error) {
	entries, err := s.entriesForWindow(ctx, userID, window)
	if err != nil {
		return "", err
	}

	insight, err := s.narrator.Narrate(ctx, entries)
	if err != nil {
		return "", fmt.Errorf("failed to narrate insight: %w", err)
	}

	return insight, nil
}

// entriesForWindow validates the window selector, resolves its bounds, and
// fetches the matching entries in a single store query.
func (s *insightService) entriesForWindow(ctx context.Context, userID string, window models.Window) ([]models.Entry, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	start, end := s.resolveWindow(window)

	entries, err := s.entryRepo.GetByUserAndWindow(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}

	if err := verifyEntries(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// validateWindow checks the selector shape: either a named period or a
// complete explicit date range, never both, never half a range.
func validateWindow(window models.Window) error {
	hasPeriod := window.Period != ""
	hasStart := window.StartDate != nil
	hasEnd := window.EndDate != nil

	if hasPeriod && (hasStart || hasEnd) {
		return newValidationError("supply either a period or an explicit date range, not both", "period", "start_date", "end_date")
	}

	if hasPeriod {
		switch window.Period {
		case models.PeriodWeek, models.PeriodMonth, models.PeriodAll:
			return nil
		default:
			return newValidationError(fmt.Sprintf("unknown period %q", window.Period), "period")
		}
	}

	if hasStart != hasEnd {
		return newValidationError("start_date and end_date must be provided together", "start_date", "end_date")
	}

	if hasStart && window.StartDate.After(*window.EndDate) {
		return newValidationError("start_date must be before or equal to end_date", "start_date", "end_date")
	}

	return nil
}

// resolveWindow turns a validated selector into concrete bounds. Nil bounds
// mean unbounded. An empty selector behaves like "all".
func (s *insightService) resolveWindow(window models.Window) (start, end *time.Time) {
	switch window.Period {
	case models.PeriodWeek:
		now := s.now()
		from := startOfDay(now.AddDate(0, 0, -7))
		return &from, &now
	case models.PeriodMonth:
		now := s.now()
		from := startOfDay(now.AddDate(0, 0, -30))
		return &from, &now
	case models.PeriodAll:
		return nil, nil
	}
	return window.StartDate, window.EndDate
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// verifyEntries shape-checks records coming back from the store. A violation
// is a DataIntegrityError: the store handed us something the write path
// should never have accepted, and it must not be coerced into the math.
func verifyEntries(entries []models.Entry) error {
	for i := range entries {
		entry := &entries[i]

		if entry.ID == "" {
			return &DataIntegrityError{EntryID: "(unknown)", Field: "id", Reason: "is empty"}
		}
		if entry.QualityRating < 1 || entry.QualityRating > 10 {
			return &DataIntegrityError{EntryID: entry.ID, Field: "quality_rating", Reason: "is outside [1,10]"}
		}
		if entry.DayRating != nil && (*entry.DayRating < 1 || *entry.DayRating > 10) {
			return &DataIntegrityError{EntryID: entry.ID, Field: "day_rating", Reason: "is outside [1,10]"}
		}
		if entry.Bedtime.IsZero() || entry.WakeUpTime.IsZero() {
			return &DataIntegrityError{EntryID: entry.ID, Field: "bedtime", Reason: "sleep interval is missing"}
		}
		if entry.EntryDate.IsZero() {
			return &DataIntegrityError{EntryID: entry.ID, Field: "entry_date", Reason: "is missing"}
		}
		if entry.Mood != nil && !entry.Mood.Valid() {
			return &DataIntegrityError{EntryID: entry.ID, Field: "mood", Reason: "is not a known mood"}
		}
	}
	return nil
}
