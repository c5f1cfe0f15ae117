package service

import (
	"sort"

	"github.com/driftlog/backend/internal/models"
)

// Display formats for chart axis labels.
const (
	moodDateFormat  = "Jan 2" // e.g. "Jun 12"
	sleepDateFormat = "Mon"   // e.g. "Thu"
)

// sortedByEntryDate returns a copy of entries in stable ascending entry-date
// order. Sorting is by the underlying time value, not the display label.
func sortedByEntryDate(entries []models.Entry) []models.Entry {
	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EntryDate.Before(sorted[j].EntryDate)
	})
	return sorted
}

// buildMoodSeries maps entries to the mood-over-time chart series.
func buildMoodSeries(entries []models.Entry) []models.MoodChartPoint {
	series := make([]models.MoodChartPoint, 0, len(entries))
	for _, entry := range sortedByEntryDate(entries) {
		series = append(series, models.MoodChartPoint{
			Date:      entry.EntryDate.Format(moodDateFormat),
			MoodValue: entry.MoodScore(),
			Mood:      entry.Mood,
		})
	}
	return series
}

// buildSleepSeries maps entries to the sleep-duration-over-time chart series.
func buildSleepSeries(entries []models.Entry) []models.SleepChartPoint {
	series := make([]models.SleepChartPoint, 0, len(entries))
	for _, entry := range sortedByEntryDate(entries) {
		series = append(series, models.SleepChartPoint{
			Date:          entry.EntryDate.Format(sleepDateFormat),
			SleepDuration: round2(entry.SleepDurationHours()),
		})
	}
	return series
}
