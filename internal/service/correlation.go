package service

import (
	"math"

	"github.com/driftlog/backend/internal/models"
)

// minCorrelationPairs is the smallest sample for which Pearson correlation
// is defined.
const minCorrelationPairs = 2

// computeCorrelation pairs each entry's sleep duration with its day rating,
// keyed by calendar date, and computes the Pearson correlation coefficient
// over the pairs. Degenerate inputs are values, not errors: fewer than two
// valid pairs yields coefficient 0 with no points, and zero variance in
// either dimension yields coefficient 0 with the points retained.
func computeCorrelation(entries []models.Entry) models.CorrelationResult {
	points := []models.CorrelationDataPoint{}
	index := make(map[string]int)

	for _, entry := range entries {
		if entry.DayRating == nil {
			continue
		}

		duration := round2(entry.SleepDurationHours())
		rating := float64(*entry.DayRating)
		if !isFinite(duration) || !isFinite(rating) {
			continue
		}

		point := models.CorrelationDataPoint{
			SleepDuration: duration,
			DayRating:     rating,
			Date:          entry.DateKey(),
		}

		// One point per calendar date; a duplicate date replaces the
		// earlier point in place, preserving insertion order.
		if i, ok := index[point.Date]; ok {
			points[i] = point
		} else {
			index[point.Date] = len(points)
			points = append(points, point)
		}
	}

	if len(points) < minCorrelationPairs {
		return models.CorrelationResult{
			CorrelationCoefficient: 0,
			DataPoints:             []models.CorrelationDataPoint{},
		}
	}

	n := float64(len(points))
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.SleepDuration
		sumY += p.DayRating
	}
	meanX := sumX / n
	meanY := sumY / n

	var numerator, denomX, denomY float64
	for _, p := range points {
		dx := p.SleepDuration - meanX
		dy := p.DayRating - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX == 0 || denomY == 0 {
		return models.CorrelationResult{CorrelationCoefficient: 0, DataPoints: points}
	}

	r := numerator / math.Sqrt(denomX*denomY)

	return models.CorrelationResult{
		CorrelationCoefficient: round4(r),
		DataPoints:             points,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
