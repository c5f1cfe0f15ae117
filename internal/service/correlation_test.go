package service

import (
	"math"
	"testing"
	"time"

	"github.com/driftlog/backend/internal/models"
)

func TestComputeCorrelationTooFewPairs(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.Entry
	}{
		{name: "no entries", entries: nil},
		{
			name: "single rated entry",
			entries: []models.Entry{
				entryOn("2025-06-01", 7, 6, intPtr(5)),
			},
		},
		{
			name: "two entries but one unrated",
			entries: []models.Entry{
				entryOn("2025-06-01", 7, 6, intPtr(5)),
				entryOn("2025-06-02", 8, 7, nil),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := computeCorrelation(tt.entries)
			if result.CorrelationCoefficient != 0 {
				t.Errorf("coefficient = %v, want 0", result.CorrelationCoefficient)
			}
			if result.DataPoints == nil || len(result.DataPoints) != 0 {
				t.Errorf("data points = %v, want empty slice", result.DataPoints)
			}
		})
	}
}

func TestComputeCorrelationPerfectPositive(t *testing.T) {
	entries := []models.Entry{
		entryOn("2025-06-01", 6, 5, intPtr(4)),
		entryOn("2025-06-02", 7, 5, intPtr(6)),
		entryOn("2025-06-03", 8, 5, intPtr(8)),
	}

	result := computeCorrelation(entries)

	if result.CorrelationCoefficient != 1 {
		t.Errorf("coefficient = %v, want 1", result.CorrelationCoefficient)
	}
	if len(result.DataPoints) != 3 {
		t.Fatalf("got %d data points, want 3", len(result.DataPoints))
	}
	for i, want := range []models.CorrelationDataPoint{
		{SleepDuration: 6, DayRating: 4, Date: "2025-06-01"},
		{SleepDuration: 7, DayRating: 6, Date: "2025-06-02"},
		{SleepDuration: 8, DayRating: 8, Date: "2025-06-03"},
	} {
		if result.DataPoints[i] != want {
			t.Errorf("point[%d] = %+v, want %+v", i, result.DataPoints[i], want)
		}
	}
}

func TestComputeCorrelationPerfectNegative(t *testing.T) {
	entries := []models.Entry{
		entryOn("2025-06-01", 9, 5, intPtr(3)),
		entryOn("2025-06-02", 7, 5, intPtr(5)),
		entryOn("2025-06-03", 5, 5, intPtr(7)),
	}

	result := computeCorrelation(entries)

	if result.CorrelationCoefficient != -1 {
		t.Errorf("coefficient = %v, want -1", result.CorrelationCoefficient)
	}
}

func TestComputeCorrelationZeroVariance(t *testing.T) {
	// Same duration every night: no variance in x, coefficient is 0 but
	// the points are kept for plotting.
	entries := []models.Entry{
		entryOn("2025-06-01", 8, 5, intPtr(3)),
		entryOn("2025-06-02", 8, 5, intPtr(7)),
		entryOn("2025-06-03", 8, 5, intPtr(5)),
	}

	result := computeCorrelation(entries)

	if result.CorrelationCoefficient != 0 {
		t.Errorf("coefficient = %v, want 0", result.CorrelationCoefficient)
	}
	if len(result.DataPoints) != 3 {
		t.Errorf("got %d data points, want 3 retained", len(result.DataPoints))
	}
}

func TestComputeCorrelationRounding(t *testing.T) {
	entries := []models.Entry{
		entryOn("2025-06-01", 6.123456, 5, intPtr(4)),
		entryOn("2025-06-02", 7.5, 5, intPtr(6)),
		entryOn("2025-06-03", 8.25, 5, intPtr(5)),
	}

	result := computeCorrelation(entries)

	if got := result.DataPoints[0].SleepDuration; got != 6.12 {
		t.Errorf("duration rounded to %v, want 6.12", got)
	}

	scaled := result.CorrelationCoefficient * 10000
	if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		t.Errorf("coefficient %v not rounded to 4 decimal places", result.CorrelationCoefficient)
	}
}

func TestComputeCorrelationDuplicateDateReplacesInPlace(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	revised := models.Entry{
		ID:            "entry-revised",
		UserID:        "user-1",
		Bedtime:       day.Add(-2 * time.Hour),
		WakeUpTime:    day.Add(6 * time.Hour),
		DurationHours: floatPtr(9),
		QualityRating: 8,
		EntryDate:     day,
		DayRating:     intPtr(9),
	}

	entries := []models.Entry{
		entryOn("2025-06-01", 6, 5, intPtr(4)),
		entryOn("2025-06-02", 7, 5, intPtr(6)),
		entryOn("2025-06-03", 8, 5, intPtr(8)),
		revised, // same date as the second entry
	}

	result := computeCorrelation(entries)

	if len(result.DataPoints) != 3 {
		t.Fatalf("got %d data points, want 3 (duplicate merged)", len(result.DataPoints))
	}

	merged := result.DataPoints[1]
	if merged.Date != "2025-06-02" || merged.SleepDuration != 9 || merged.DayRating != 9 {
		t.Errorf("merged point = %+v, want later entry at original position", merged)
	}
}
