package service

import (
	"github.com/driftlog/backend/internal/models"
)

// buildWellbeingSummary reduces a user's entries to summary statistics. An
// empty entry list is not an error: averages come back nil and both day
// lists empty.
func buildWellbeingSummary(entries []models.Entry) models.WellbeingSummary {
	summary := models.WellbeingSummary{
		BestSleepDays:  []models.SleepSummaryDay{},
		WorstSleepDays: []models.SleepSummaryDay{},
	}

	if len(entries) == 0 {
		return summary
	}

	var totalDuration float64
	var totalDayRating int
	var ratedDays int

	// Initialized outside the valid 1-10 rating range so the first entry
	// always seeds both lists.
	bestQuality := 0
	worstQuality := 11

	for _, entry := range entries {
		totalDuration += entry.SleepDurationHours()

		day := models.SleepSummaryDay{
			Date:          entry.DateKey(),
			QualityRating: entry.QualityRating,
		}

		// Strictly better quality resets the list; equal quality appends.
		// Ties are kept on purpose: several days can share the record.
		if entry.QualityRating > bestQuality {
			bestQuality = entry.QualityRating
			summary.BestSleepDays = []models.SleepSummaryDay{day}
		} else if entry.QualityRating == bestQuality {
			summary.BestSleepDays = append(summary.BestSleepDays, day)
		}

		if entry.QualityRating < worstQuality {
			worstQuality = entry.QualityRating
			summary.WorstSleepDays = []models.SleepSummaryDay{day}
		} else if entry.QualityRating == worstQuality {
			summary.WorstSleepDays = append(summary.WorstSleepDays, day)
		}

		// Entries without a day rating are excluded from the average
		// entirely, not counted as zero.
		if entry.DayRating != nil {
			totalDayRating += *entry.DayRating
			ratedDays++
		}
	}

	avgDuration := totalDuration / float64(len(entries))
	summary.AverageSleepDurationHours = &avgDuration

	if ratedDays > 0 {
		avgRating := float64(totalDayRating) / float64(ratedDays)
		summary.AverageDayRating = &avgRating
	}

	return summary
}
