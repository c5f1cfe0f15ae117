package models

import "time"

// Window periods accepted by the insight endpoints.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// Window selects which entries an insight query aggregates: one of the named
// periods, or an explicit start/end date pair. Exactly one form may be used.
type Window struct {
	Period    string     `json:"period,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// SleepSummaryDay is one best/worst sleep-quality day in a summary.
type SleepSummaryDay struct {
	Date          string `json:"date"`
	QualityRating int    `json:"quality_rating"`
}

// WellbeingSummary aggregates one user's entries over a window. The averages
// are nil when no entry (or no rated entry) fell inside the window.
type WellbeingSummary struct {
	AverageSleepDurationHours *float64          `json:"average_sleep_duration_hours"`
	AverageDayRating          *float64          `json:"average_day_rating"`
	BestSleepDays             []SleepSummaryDay `json:"best_sleep_days"`
	WorstSleepDays            []SleepSummaryDay `json:"worst_sleep_days"`
}

// CorrelationDataPoint pairs one day's sleep duration with its day rating.
type CorrelationDataPoint struct {
	SleepDuration float64 `json:"sleep_duration"`
	DayRating     float64 `json:"day_rating"`
	Date          string  `json:"date"`
}

// CorrelationResult holds the Pearson coefficient between sleep duration and
// day rating plus the paired points it was computed over. A coefficient of 0
// with empty points means too few pairs; 0 with points retained means one
// variable had zero variance.
type CorrelationResult struct {
	CorrelationCoefficient float64                `json:"correlation_coefficient"`
	DataPoints             []CorrelationDataPoint `json:"data_points"`
}

// MoodChartPoint is one mood observation for the mood-over-time chart.
type MoodChartPoint struct {
	Date      string `json:"date"`
	MoodValue int    `json:"mood_value"`
	Mood      *Mood  `json:"mood"`
}

// SleepChartPoint is one night's duration for the sleep-over-time chart.
type SleepChartPoint struct {
	Date          string  `json:"date"`
	SleepDuration float64 `json:"sleep_duration"`
}

// ChartsData is the combined analytics payload: three time-ordered series
// plus the narrated insight for the same window.
type ChartsData struct {
	MoodChartData          []MoodChartPoint       `json:"mood_chart_data"`
	SleepDurationChartData []SleepChartPoint      `json:"sleep_duration_chart_data"`
	CorrelationChartData   []CorrelationDataPoint `json:"correlation_chart_data"`
	NarratedInsight        string                 `json:"narrated_insight"`
}
