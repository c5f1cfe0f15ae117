package models

import "time"

// Mood is the closed set of mood labels a journal entry may carry.
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodExcited  Mood = "Excited"
	MoodNeutral  Mood = "Neutral"
	MoodTired    Mood = "Tired"
	MoodStressed Mood = "Stressed"
	MoodSad      Mood = "Sad"
)

// moodScores maps each mood to its numeric chart weight. Tired and Stressed
// intentionally share the same weight.
var moodScores = map[Mood]int{
	MoodHappy:    5,
	MoodExcited:  4,
	MoodNeutral:  3,
	MoodTired:    2,
	MoodStressed: 2,
	MoodSad:      1,
}

// Score returns the numeric chart weight for a mood. Unrecognized moods
// fall back to the Neutral weight.
func (m Mood) Score() int {
	if s, ok := moodScores[m]; ok {
		return s
	}
	return moodScores[MoodNeutral]
}

// Valid reports whether m is one of the known mood labels.
func (m Mood) Valid() bool {
	_, ok := moodScores[m]
	return ok
}

// User represents an authenticated user in the system
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entry is one user's combined sleep and wellbeing record for a calendar day.
// EntryDate is the day being journaled; Bedtime may fall on the prior evening.
type Entry struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Bedtime       time.Time  `json:"bedtime"`
	WakeUpTime    time.Time  `json:"wake_up_time"`
	DurationHours *float64   `json:"duration_hours,omitempty"`
	QualityRating int        `json:"quality_rating"`
	SleepComments *string    `json:"sleep_comments,omitempty"`
	EntryDate     time.Time  `json:"entry_date"`
	DayRating     *int       `json:"day_rating,omitempty"`
	Mood          *Mood      `json:"mood,omitempty"`
	DayComments   *string    `json:"day_comments,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DateKey returns the calendar-date bucket key for this entry.
func (e *Entry) DateKey() string {
	return e.EntryDate.Format("2006-01-02")
}

// SleepDurationHours returns the effective sleep duration in hours. The stored
// DurationHours wins when present; otherwise the duration is derived from the
// wake/bed interval, adding 24h when the naive subtraction is negative (a wake
// time stored with an earlier clock time means the sleep crossed midnight).
func (e *Entry) SleepDurationHours() float64 {
	if e.DurationHours != nil {
		return *e.DurationHours
	}
	d := e.WakeUpTime.Sub(e.Bedtime)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours()
}

// MoodScore returns the numeric chart weight for the entry's mood, defaulting
// to the Neutral weight when no mood was logged.
func (e *Entry) MoodScore() int {
	if e.Mood == nil {
		return MoodNeutral.Score()
	}
	return e.Mood.Score()
}

// CreateEntryRequest represents the request to create a journal entry
type CreateEntryRequest struct {
	Bedtime       time.Time `json:"bedtime" binding:"required"`
	WakeUpTime    time.Time `json:"wake_up_time" binding:"required"`
	DurationHours *float64  `json:"duration_hours"`
	QualityRating int       `json:"quality_rating" binding:"required,gte=1,lte=10"`
	SleepComments *string   `json:"sleep_comments"`
	EntryDate     time.Time `json:"entry_date" binding:"required"`
	DayRating     *int      `json:"day_rating" binding:"omitempty,gte=1,lte=10"`
	Mood          *Mood     `json:"mood"`
	DayComments   *string   `json:"day_comments"`
}

// UpdateEntryRequest represents a partial update to a journal entry.
// Nullable fields distinguish "not sent" from "set to null" so the edit
// dialog can submit only the fields that changed.
type UpdateEntryRequest struct {
	Bedtime       NullableTime   `json:"bedtime"`
	WakeUpTime    NullableTime   `json:"wake_up_time"`
	DurationHours NullableFloat  `json:"duration_hours"`
	QualityRating NullableInt    `json:"quality_rating"`
	SleepComments NullableString `json:"sleep_comments"`
	EntryDate     NullableTime   `json:"entry_date"`
	DayRating     NullableInt    `json:"day_rating"`
	Mood          NullableString `json:"mood"`
	DayComments   NullableString `json:"day_comments"`
}
