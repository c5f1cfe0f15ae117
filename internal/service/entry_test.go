package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/driftlog/backend/internal/models"
)

func TestCreateEntryDerivesDuration(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		bedtime    time.Time
		wakeUpTime time.Time
		duration   *float64
		want       float64
	}{
		{
			name:       "same day interval",
			bedtime:    day.Add(21 * time.Hour),
			wakeUpTime: day.Add(23 * time.Hour),
			want:       2,
		},
		{
			name:       "crosses midnight",
			bedtime:    day.Add(23 * time.Hour),
			wakeUpTime: day.AddDate(0, 0, 1).Add(6*time.Hour + 30*time.Minute),
			want:       7.5,
		},
		{
			name:       "wake clock before bed clock on the same date",
			bedtime:    day.Add(23 * time.Hour),
			wakeUpTime: day.Add(7 * time.Hour),
			want:       8,
		},
		{
			name:       "explicit duration wins",
			bedtime:    day.Add(23 * time.Hour),
			wakeUpTime: day.Add(7 * time.Hour),
			duration:   floatPtr(6.25),
			want:       6.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockEntryRepository()
			svc := NewEntryService(repo)

			entry, err := svc.CreateEntry(context.Background(), "user-1", &models.CreateEntryRequest{
				Bedtime:       tt.bedtime,
				WakeUpTime:    tt.wakeUpTime,
				DurationHours: tt.duration,
				QualityRating: 7,
				EntryDate:     day,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if entry.DurationHours == nil || *entry.DurationHours != tt.want {
				t.Errorf("duration = %v, want %v", entry.DurationHours, tt.want)
			}
			if entry.ID == "" {
				t.Error("entry was created without an id")
			}
			if entry.UserID != "user-1" {
				t.Errorf("user id = %q", entry.UserID)
			}
		})
	}
}

func TestCreateEntryRejectsUnknownMood(t *testing.T) {
	repo := newMockEntryRepository()
	svc := NewEntryService(repo)

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateEntry(context.Background(), "user-1", &models.CreateEntryRequest{
		Bedtime:       day.Add(22 * time.Hour),
		WakeUpTime:    day.Add(6 * time.Hour),
		QualityRating: 7,
		EntryDate:     day,
		Mood:          moodPtr(models.Mood("Jubilant")),
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if repo.lastCreated != nil {
		t.Error("invalid entry reached the store")
	}
}

func TestGetEntryOwnership(t *testing.T) {
	repo := newMockEntryRepository()
	theirs := entryOn("2025-06-01", 7, 6, nil)
	theirs.UserID = "user-2"
	repo.entries[theirs.ID] = &theirs

	svc := NewEntryService(repo)

	entry, err := svc.GetEntry(context.Background(), "user-1", theirs.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry != nil {
		t.Error("another user's entry was returned")
	}
}

func TestUpdateEntryPartialFields(t *testing.T) {
	existing := entryOn("2025-06-01", 7, 6, intPtr(5))

	tests := []struct {
		name       string
		req        models.UpdateEntryRequest
		wantFields []string
		wantErr    bool
	}{
		{
			name: "quality only",
			req: models.UpdateEntryRequest{
				QualityRating: models.NullableInt{Set: true, Valid: true, Value: 9},
			},
			wantFields: []string{"quality_rating"},
		},
		{
			name: "clear mood with explicit null",
			req: models.UpdateEntryRequest{
				Mood: models.NullableString{Set: true, Valid: false},
			},
			wantFields: []string{"mood"},
		},
		{
			name: "moving bedtime re-derives duration",
			req: models.UpdateEntryRequest{
				Bedtime: models.NullableTime{Set: true, Valid: true, Value: time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)},
			},
			wantFields: []string{"bedtime", "duration_hours"},
		},
		{
			name: "explicit duration pins the value",
			req: models.UpdateEntryRequest{
				Bedtime:       models.NullableTime{Set: true, Valid: true, Value: time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)},
				DurationHours: models.NullableFloat{Set: true, Valid: true, Value: 6},
			},
			wantFields: []string{"bedtime", "duration_hours"},
		},
		{
			name: "null bedtime rejected",
			req: models.UpdateEntryRequest{
				Bedtime: models.NullableTime{Set: true, Valid: false},
			},
			wantErr: true,
		},
		{
			name: "out of range day rating rejected",
			req: models.UpdateEntryRequest{
				DayRating: models.NullableInt{Set: true, Valid: true, Value: 12},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockEntryRepository()
			stored := existing
			repo.entries[stored.ID] = &stored

			svc := NewEntryService(repo)

			_, err := svc.UpdateEntry(context.Background(), "user-1", stored.ID, &tt.req)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(repo.lastUpdateFields) != len(tt.wantFields) {
				t.Fatalf("update fields = %v, want keys %v", repo.lastUpdateFields, tt.wantFields)
			}
			for _, key := range tt.wantFields {
				if _, ok := repo.lastUpdateFields[key]; !ok {
					t.Errorf("missing update field %q in %v", key, repo.lastUpdateFields)
				}
			}
		})
	}
}

func TestUpdateEntryDerivedDurationValue(t *testing.T) {
	existing := entryOn("2025-06-01", 8, 6, nil)

	repo := newMockEntryRepository()
	stored := existing
	repo.entries[stored.ID] = &stored

	svc := NewEntryService(repo)

	// New bedtime at 23:00 the prior evening against the existing 06:00
	// wake-up: seven hours.
	newBedtime := stored.WakeUpTime.Add(-7 * time.Hour)
	_, err := svc.UpdateEntry(context.Background(), "user-1", stored.ID, &models.UpdateEntryRequest{
		Bedtime: models.NullableTime{Set: true, Valid: true, Value: newBedtime},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := repo.lastUpdateFields["duration_hours"].(float64)
	if !ok || got != 7 {
		t.Errorf("derived duration = %v, want 7", repo.lastUpdateFields["duration_hours"])
	}
}

func TestUpdateEntryClearMoodSendsNull(t *testing.T) {
	existing := entryOn("2025-06-01", 7, 6, nil)
	existing.Mood = moodPtr(models.MoodHappy)

	repo := newMockEntryRepository()
	repo.entries[existing.ID] = &existing

	svc := NewEntryService(repo)

	_, err := svc.UpdateEntry(context.Background(), "user-1", existing.ID, &models.UpdateEntryRequest{
		Mood: models.NullableString{Set: true, Valid: false},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok := repo.lastUpdateFields["mood"]
	if !ok {
		t.Fatal("mood missing from update fields")
	}
	if value != nil {
		t.Errorf("mood = %v, want nil", value)
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	repo := newMockEntryRepository()
	svc := NewEntryService(repo)

	entry, err := svc.UpdateEntry(context.Background(), "user-1", "missing", &models.UpdateEntryRequest{
		QualityRating: models.NullableInt{Set: true, Valid: true, Value: 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry != nil {
		t.Error("expected nil entry for a missing id")
	}
	if repo.lastUpdateFields != nil {
		t.Error("store update issued for a missing entry")
	}
}

func TestDeleteEntry(t *testing.T) {
	existing := entryOn("2025-06-01", 7, 6, nil)

	repo := newMockEntryRepository()
	repo.entries[existing.ID] = &existing

	svc := NewEntryService(repo)

	if err := svc.DeleteEntry(context.Background(), "user-1", existing.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deleteCalls != 1 {
		t.Errorf("delete calls = %d, want 1", repo.deleteCalls)
	}

	if err := svc.DeleteEntry(context.Background(), "user-1", existing.ID); err == nil {
		t.Error("expected error deleting a missing entry")
	}
}
