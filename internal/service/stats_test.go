package service

import (
	"testing"
	"time"

	"github.com/driftlog/backend/internal/models"
)

func TestBuildWellbeingSummaryEmpty(t *testing.T) {
	summary := buildWellbeingSummary(nil)

	if summary.AverageSleepDurationHours != nil {
		t.Errorf("expected nil average duration, got %v", *summary.AverageSleepDurationHours)
	}
	if summary.AverageDayRating != nil {
		t.Errorf("expected nil average day rating, got %v", *summary.AverageDayRating)
	}
	if summary.BestSleepDays == nil || len(summary.BestSleepDays) != 0 {
		t.Errorf("expected empty best days slice, got %v", summary.BestSleepDays)
	}
	if summary.WorstSleepDays == nil || len(summary.WorstSleepDays) != 0 {
		t.Errorf("expected empty worst days slice, got %v", summary.WorstSleepDays)
	}
}

func TestBuildWellbeingSummaryAverages(t *testing.T) {
	entries := []models.Entry{
		entryOn("2025-06-01", 6.0, 5, intPtr(4)),
		entryOn("2025-06-02", 8.0, 7, intPtr(8)),
		entryOn("2025-06-03", 7.0, 6, nil), // unrated day
	}

	summary := buildWellbeingSummary(entries)

	if summary.AverageSleepDurationHours == nil || *summary.AverageSleepDurationHours != 7.0 {
		t.Errorf("average duration = %v, want 7.0", summary.AverageSleepDurationHours)
	}
	// Unrated day is excluded from the denominator, not counted as zero.
	if summary.AverageDayRating == nil || *summary.AverageDayRating != 6.0 {
		t.Errorf("average day rating = %v, want 6.0", summary.AverageDayRating)
	}
}

func TestBuildWellbeingSummaryDerivesDuration(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Wake-up clock time earlier than bedtime: interval wraps midnight.
	wrapped := models.Entry{
		ID:            "entry-wrap",
		UserID:        "user-1",
		Bedtime:       day.Add(23 * time.Hour),
		WakeUpTime:    day.Add(7 * time.Hour),
		QualityRating: 6,
		EntryDate:     day,
	}

	summary := buildWellbeingSummary([]models.Entry{wrapped})

	if summary.AverageSleepDurationHours == nil || *summary.AverageSleepDurationHours != 8.0 {
		t.Errorf("average duration = %v, want 8.0 (midnight wrap)", summary.AverageSleepDurationHours)
	}
}

func TestBuildWellbeingSummaryStoredDurationWins(t *testing.T) {
	entry := entryOn("2025-06-11", 9.5, 6, nil)

	summary := buildWellbeingSummary([]models.Entry{entry})

	if summary.AverageSleepDurationHours == nil || *summary.AverageSleepDurationHours != 9.5 {
		t.Errorf("average duration = %v, want stored 9.5", summary.AverageSleepDurationHours)
	}
}

func TestBuildWellbeingSummaryBestWorstDays(t *testing.T) {
	tests := []struct {
		name      string
		entries   []models.Entry
		wantBest  []string
		wantWorst []string
	}{
		{
			name: "distinct qualities",
			entries: []models.Entry{
				entryOn("2025-06-01", 7, 4, nil),
				entryOn("2025-06-02", 7, 9, nil),
				entryOn("2025-06-03", 7, 6, nil),
			},
			wantBest:  []string{"2025-06-02"},
			wantWorst: []string{"2025-06-01"},
		},
		{
			name: "ties are kept",
			entries: []models.Entry{
				entryOn("2025-06-01", 7, 8, nil),
				entryOn("2025-06-02", 7, 3, nil),
				entryOn("2025-06-03", 7, 8, nil),
				entryOn("2025-06-04", 7, 3, nil),
			},
			wantBest:  []string{"2025-06-01", "2025-06-03"},
			wantWorst: []string{"2025-06-02", "2025-06-04"},
		},
		{
			name: "single entry is both best and worst",
			entries: []models.Entry{
				entryOn("2025-06-05", 7, 5, nil),
			},
			wantBest:  []string{"2025-06-05"},
			wantWorst: []string{"2025-06-05"},
		},
		{
			name: "strictly better quality resets earlier ties",
			entries: []models.Entry{
				entryOn("2025-06-01", 7, 6, nil),
				entryOn("2025-06-02", 7, 6, nil),
				entryOn("2025-06-03", 7, 7, nil),
			},
			wantBest:  []string{"2025-06-03"},
			wantWorst: []string{"2025-06-01", "2025-06-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := buildWellbeingSummary(tt.entries)

			gotBest := summaryDates(summary.BestSleepDays)
			if !equalStrings(gotBest, tt.wantBest) {
				t.Errorf("best days = %v, want %v", gotBest, tt.wantBest)
			}

			gotWorst := summaryDates(summary.WorstSleepDays)
			if !equalStrings(gotWorst, tt.wantWorst) {
				t.Errorf("worst days = %v, want %v", gotWorst, tt.wantWorst)
			}
		})
	}
}

func summaryDates(days []models.SleepSummaryDay) []string {
	dates := make([]string, 0, len(days))
	for _, day := range days {
		dates = append(dates, day.Date)
	}
	return dates
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
