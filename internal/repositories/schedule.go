package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/songday/internal/models"
	"github.com/desertthunder/songday/internal/shared"
)

// ScheduleRepository implements tasks.ScheduleStore on SQLite.
//
// The schedule is append-only: there is no update or delete path. Both
// identity and day carry UNIQUE constraints, so the engine's invariants are
// enforced at the storage layer as well.
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new ScheduleRepository with the given database connection
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// All loads the full schedule ordered by day. An empty table yields an empty
// schedule, not an error.
func (r *ScheduleRepository) All() (models.Schedule, error) {
	query := `
		SELECT id, sequence, identity, day, title, subtitle, primary_link, secondary_link, created_at
		FROM schedule_entries
		ORDER BY day ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("failed to query schedule: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := r.scanRow(rows)
		if err != nil {
			return models.Schedule{}, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return models.Schedule{}, fmt.Errorf("row iteration error: %w", err)
	}

	return models.Schedule{Entries: entries}, nil
}

// Append inserts the given entries in one transaction, assigning each an ID,
// sequence number and creation timestamp in place.
//
// All-or-nothing: any failure rolls back the whole batch.
func (r *ScheduleRepository) Append(entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO schedule_entries (id, sequence, identity, day, title, subtitle, primary_link, secondary_link, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	for i := range entries {
		sequence, err := NextSequence(tx, "schedule_entries")
		if err != nil {
			return fmt.Errorf("failed to generate sequence: %w", err)
		}

		entries[i].ID = shared.GenerateID()
		entries[i].Sequence = sequence
		entries[i].CreatedAt = now

		_, err = tx.Exec(query,
			entries[i].ID,
			entries[i].Sequence,
			entries[i].Identity,
			entries[i].DayKey(),
			entries[i].Title,
			entries[i].Subtitle,
			entries[i].PrimaryLink,
			entries[i].SecondaryLink,
			entries[i].CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry for %s: %w", entries[i].DayKey(), err)
		}
	}

	return tx.Commit()
}

// GetByIdentity retrieves the entry scheduled for the given identity.
func (r *ScheduleRepository) GetByIdentity(identity string) (*models.Entry, error) {
	query := `
		SELECT id, sequence, identity, day, title, subtitle, primary_link, secondary_link, created_at
		FROM schedule_entries
		WHERE identity = ?
	`

	return r.scanOne(r.db.QueryRow(query, identity))
}

// GetByDay retrieves the entry occupying the given calendar day.
func (r *ScheduleRepository) GetByDay(day time.Time) (*models.Entry, error) {
	query := `
		SELECT id, sequence, identity, day, title, subtitle, primary_link, secondary_link, created_at
		FROM schedule_entries
		WHERE day = ?
	`

	return r.scanOne(r.db.QueryRow(query, models.FormatDay(day)))
}

// Count returns the number of scheduled entries.
func (r *ScheduleRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM schedule_entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// scanOne scans a single [sql.Row] into a [models.Entry]
func (r *ScheduleRepository) scanOne(row *sql.Row) (*models.Entry, error) {
	var (
		id            string
		sequence      int
		identity      string
		day           string
		title         string
		subtitle      string
		primaryLink   string
		secondaryLink string
		createdAt     time.Time
	)

	err := row.Scan(&id, &sequence, &identity, &day, &title, &subtitle, &primaryLink, &secondaryLink, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan entry: %w", err)
	}

	parsed, err := models.ParseDay(day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedEntry, err)
	}

	return &models.Entry{
		ID:            id,
		Sequence:      sequence,
		Identity:      identity,
		Day:           parsed,
		Title:         title,
		Subtitle:      subtitle,
		PrimaryLink:   primaryLink,
		SecondaryLink: secondaryLink,
		CreatedAt:     createdAt,
	}, nil
}

// scanRow scans a row from [sql.Rows] into a [models.Entry]
func (r *ScheduleRepository) scanRow(rows *sql.Rows) (models.Entry, error) {
	var (
		id            string
		sequence      int
		identity      string
		day           string
		title         string
		subtitle      string
		primaryLink   string
		secondaryLink string
		createdAt     time.Time
	)

	err := rows.Scan(&id, &sequence, &identity, &day, &title, &subtitle, &primaryLink, &secondaryLink, &createdAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to scan entry: %w", err)
	}

	parsed, err := models.ParseDay(day)
	if err != nil {
		// Surface malformed rows instead of silently dropping schedule data.
		return models.Entry{}, fmt.Errorf("%w: %v", shared.ErrMalformedEntry, err)
	}

	return models.Entry{
		ID:            id,
		Sequence:      sequence,
		Identity:      identity,
		Day:           parsed,
		Title:         title,
		Subtitle:      subtitle,
		PrimaryLink:   primaryLink,
		SecondaryLink: secondaryLink,
		CreatedAt:     createdAt,
	}, nil
}
