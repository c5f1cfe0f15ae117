package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/driftlog/backend/internal/models"
	"github.com/driftlog/backend/internal/repository"
)

type entryService struct {
	entryRepo repository.EntryRepository
}

// NewEntryService creates a new entry service
func NewEntryService(entryRepo repository.EntryRepository) EntryService {
	return &entryService{entryRepo: entryRepo}
}

func (s *entryService) CreateEntry(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.Entry, error) {
	if req.Mood != nil && !req.Mood.Valid() {
		return nil, newValidationError(fmt.Sprintf("unknown mood %q", *req.Mood), "mood")
	}
	if req.DurationHours != nil && *req.DurationHours < 0 {
		return nil, newValidationError("must be non-negative", "duration_hours")
	}

	entry := &models.Entry{
		ID:            uuid.NewString(),
		UserID:        userID,
		Bedtime:       req.Bedtime,
		WakeUpTime:    req.WakeUpTime,
		DurationHours: req.DurationHours,
		QualityRating: req.QualityRating,
		SleepComments: req.SleepComments,
		EntryDate:     req.EntryDate,
		DayRating:     req.DayRating,
		Mood:          req.Mood,
		DayComments:   req.DayComments,
	}

	// Store the derived duration at write time so reads never have to
	// repeat the midnight-crossing adjustment.
	if entry.DurationHours == nil {
		derived := entry.SleepDurationHours()
		entry.DurationHours = &derived
	}

	return s.entryRepo.Create(ctx, entry)
}

func (s *entryService) GetEntry(ctx context.Context, userID, entryID string) (*models.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	// Entries are strictly per-user; an entry belonging to someone else
	// is indistinguishable from a missing one.
	if entry == nil || entry.UserID != userID {
		return nil, nil
	}

	return entry, nil
}

func (s *entryService) GetUserEntries(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.entryRepo.GetByUserID(ctx, userID, limit, offset)
}

func (s *entryService) UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateEntryRequest) (*models.Entry, error) {
	existing, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	fields, err := updateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return existing, nil
	}

	// When the sleep interval moves and the caller did not pin an explicit
	// duration, re-derive it from the new interval.
	if req.Bedtime.Set || req.WakeUpTime.Set {
		if !req.DurationHours.Set {
			bedtime := existing.Bedtime
			wakeUp := existing.WakeUpTime
			if req.Bedtime.Set && req.Bedtime.Valid {
				bedtime = req.Bedtime.Value
			}
			if req.WakeUpTime.Set && req.WakeUpTime.Valid {
				wakeUp = req.WakeUpTime.Value
			}
			fields["duration_hours"] = deriveDuration(bedtime, wakeUp)
		}
	}

	return s.entryRepo.Update(ctx, entryID, fields)
}

func (s *entryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	existing, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("entry not found")
	}

	return s.entryRepo.Delete(ctx, entryID)
}

// updateFields translates a partial-update request into the column map sent
// to the store, validating whatever was actually supplied. Fields that were
// not present in the request JSON are left untouched.
func updateFields(req *models.UpdateEntryRequest) (map[string]any, error) {
	fields := make(map[string]any)

	if req.Bedtime.Set {
		if !req.Bedtime.Valid {
			return nil, newValidationError("cannot be null", "bedtime")
		}
		fields["bedtime"] = req.Bedtime.Value
	}
	if req.WakeUpTime.Set {
		if !req.WakeUpTime.Valid {
			return nil, newValidationError("cannot be null", "wake_up_time")
		}
		fields["wake_up_time"] = req.WakeUpTime.Value
	}
	if req.EntryDate.Set {
		if !req.EntryDate.Valid {
			return nil, newValidationError("cannot be null", "entry_date")
		}
		fields["entry_date"] = req.EntryDate.Value
	}
	if req.DurationHours.Set {
		if req.DurationHours.Valid && req.DurationHours.Value < 0 {
			return nil, newValidationError("must be non-negative", "duration_hours")
		}
		fields["duration_hours"] = req.DurationHours.ToPtr()
	}
	if req.QualityRating.Set {
		if !req.QualityRating.Valid || req.QualityRating.Value < 1 || req.QualityRating.Value > 10 {
			return nil, newValidationError("must be an integer between 1 and 10", "quality_rating")
		}
		fields["quality_rating"] = req.QualityRating.Value
	}
	if req.DayRating.Set {
		if req.DayRating.Valid && (req.DayRating.Value < 1 || req.DayRating.Value > 10) {
			return nil, newValidationError("must be an integer between 1 and 10", "day_rating")
		}
		fields["day_rating"] = req.DayRating.ToPtr()
	}
	if req.Mood.Set {
		if req.Mood.Valid {
			mood := models.Mood(req.Mood.Value)
			if !mood.Valid() {
				return nil, newValidationError(fmt.Sprintf("unknown mood %q", req.Mood.Value), "mood")
			}
			fields["mood"] = string(mood)
		} else {
			fields["mood"] = nil
		}
	}
	if req.SleepComments.Set {
		fields["sleep_comments"] = req.SleepComments.ToPtr()
	}
	if req.DayComments.Set {
		fields["day_comments"] = req.DayComments.ToPtr()
	}

	return fields, nil
}

func deriveDuration(bedtime, wakeUp time.Time) float64 {
	d := wakeUp.Sub(bedtime)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours()
}
