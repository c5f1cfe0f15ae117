package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/driftlog/backend/internal/models"
)

const entryColumns = `id, user_id, bedtime, wake_up_time, duration_hours, quality_rating,
	sleep_comments, entry_date, day_rating, mood, day_comments, created_at, updated_at`

type postgresEntryRepository struct {
	db *sql.DB
}

// NewPostgresEntryRepository creates an entry repository backed by Postgres.
// Used by deployments that keep entries in their own database instead of
// Supabase.
func NewPostgresEntryRepository(dsn string) (EntryRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return &postgresEntryRepository{db: db}, nil
}

func (r *postgresEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query := fmt.Sprintf(`INSERT INTO entries
		(id, user_id, bedtime, wake_up_time, duration_hours, quality_rating,
		 sleep_comments, entry_date, day_rating, mood, day_comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		RETURNING %s`, entryColumns)

	var mood *string
	if entry.Mood != nil {
		m := string(*entry.Mood)
		mood = &m
	}

	row := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Bedtime, entry.WakeUpTime, entry.DurationHours,
		entry.QualityRating, entry.SleepComments, entry.EntryDate, entry.DayRating,
		mood, entry.DayComments)

	created, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return created, nil
}

func (r *postgresEntryRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM entries WHERE id = $1`, entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

func (r *postgresEntryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM entries
		WHERE user_id = $1 ORDER BY entry_date DESC LIMIT $2 OFFSET $3`, entryColumns)

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *postgresEntryRepository) GetByUserAndWindow(ctx context.Context, userID string, start, end *time.Time) ([]models.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM entries WHERE user_id = $1`, entryColumns)
	args := []any{userID}

	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND entry_date >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND entry_date <= $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *postgresEntryRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Entry, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	// Deterministic column order keeps the statement stable for a given
	// field set.
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+1)
	for _, col := range cols {
		args = append(args, fields[col])
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE entries SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no entry returned")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

func (r *postgresEntryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var e models.Entry
	var duration sql.NullFloat64
	var sleepComments, mood, dayComments sql.NullString
	var dayRating sql.NullInt64

	err := row.Scan(&e.ID, &e.UserID, &e.Bedtime, &e.WakeUpTime, &duration,
		&e.QualityRating, &sleepComments, &e.EntryDate, &dayRating, &mood,
		&dayComments, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		e.DurationHours = &duration.Float64
	}
	if sleepComments.Valid {
		e.SleepComments = &sleepComments.String
	}
	if dayRating.Valid {
		v := int(dayRating.Int64)
		e.DayRating = &v
	}
	if mood.Valid {
		m := models.Mood(mood.String)
		e.Mood = &m
	}
	if dayComments.Valid {
		e.DayComments = &dayComments.String
	}

	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]models.Entry, error) {
	entries := []models.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}
