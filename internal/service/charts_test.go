package service

import (
	"testing"

	"github.com/driftlog/backend/internal/models"
)

func TestBuildMoodSeries(t *testing.T) {
	withMood := func(date string, mood *models.Mood) models.Entry {
		entry := entryOn(date, 7, 6, nil)
		entry.Mood = mood
		return entry
	}

	entries := []models.Entry{
		withMood("2025-06-12", moodPtr(models.MoodHappy)),
		withMood("2025-06-13", moodPtr(models.MoodTired)),
		withMood("2025-06-14", moodPtr(models.MoodStressed)),
		withMood("2025-06-15", nil),
		withMood("2025-06-16", moodPtr(models.Mood("bewildered"))),
	}

	series := buildMoodSeries(entries)

	if len(series) != 5 {
		t.Fatalf("got %d points, want 5", len(series))
	}

	wantValues := []int{5, 2, 2, 3, 3}
	for i, want := range wantValues {
		if series[i].MoodValue != want {
			t.Errorf("point[%d].MoodValue = %d, want %d", i, series[i].MoodValue, want)
		}
	}

	if series[0].Date != "Jun 12" {
		t.Errorf("point[0].Date = %q, want %q", series[0].Date, "Jun 12")
	}
	if series[0].Mood == nil || *series[0].Mood != models.MoodHappy {
		t.Errorf("point[0].Mood = %v, want %q", series[0].Mood, models.MoodHappy)
	}
	if series[3].Mood != nil {
		t.Errorf("point[3].Mood = %v, want nil preserved", series[3].Mood)
	}
}

func TestBuildSleepSeries(t *testing.T) {
	entries := []models.Entry{
		entryOn("2025-06-12", 7.333333, 6, nil), // Thursday
		entryOn("2025-06-13", 8, 7, nil),        // Friday
	}

	series := buildSleepSeries(entries)

	if len(series) != 2 {
		t.Fatalf("got %d points, want 2", len(series))
	}
	if series[0].Date != "Thu" || series[1].Date != "Fri" {
		t.Errorf("labels = %q, %q, want weekday names", series[0].Date, series[1].Date)
	}
	if series[0].SleepDuration != 7.33 {
		t.Errorf("duration = %v, want 7.33", series[0].SleepDuration)
	}
}

func TestChartSeriesSortedByEntryDate(t *testing.T) {
	entries := []models.Entry{
		entryOn("2025-06-14", 7, 6, nil),
		entryOn("2025-06-12", 6, 5, nil),
		entryOn("2025-06-13", 8, 7, nil),
	}

	series := buildSleepSeries(entries)

	want := []string{"Thu", "Fri", "Sat"}
	for i, label := range want {
		if series[i].Date != label {
			t.Errorf("point[%d].Date = %q, want %q", i, series[i].Date, label)
		}
	}

	// The input slice must not be reordered.
	if entries[0].DateKey() != "2025-06-14" {
		t.Error("input slice was mutated by sorting")
	}
}

func TestBuildSeriesEmpty(t *testing.T) {
	if got := buildMoodSeries(nil); got == nil || len(got) != 0 {
		t.Errorf("mood series = %v, want empty slice", got)
	}
	if got := buildSleepSeries(nil); got == nil || len(got) != 0 {
		t.Errorf("sleep series = %v, want empty slice", got)
	}
}
