package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOccasion wraps validation failures from CreateOccasion.
var ErrInvalidOccasion = errors.New("invalid occasion")

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if parsing fails.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

const occasionColumns = `id, year, month, day, title, is_holiday, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOccasion(row rowScanner) (*Occasion, error) {
	var o Occasion
	var isHoliday int
	var createdAt, updatedAt string

	if err := row.Scan(&o.ID, &o.Year, &o.Month, &o.Day, &o.Title, &isHoliday, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	o.IsHoliday = isHoliday == 1
	o.CreatedAt = parseTimestamp(createdAt)
	o.UpdatedAt = parseTimestamp(updatedAt)
	return &o, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// =============================================================================
// Occasion Queries
// =============================================================================

func createOccasion(ctx context.Context, q querier, o *Occasion) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOccasion, err)
	}

	res, err := q.ExecContext(ctx,
		`INSERT INTO occasions (year, month, day, title, is_holiday) VALUES (?, ?, ?, ?, ?)`,
		o.Year, o.Month, o.Day, o.Title, boolToInt(o.IsHoliday),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert occasion: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get occasion id: %w", err)
	}
	o.ID = id

	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	return nil
}

// CreateOccasion inserts an occasion and sets its ID.
// Returns ErrDuplicate if the same title is already on that date.
func (db *DB) CreateOccasion(ctx context.Context, o *Occasion) error {
	return createOccasion(ctx, db.DB, o)
}

// CreateOccasion inserts an occasion inside the transaction.
func (tx *Tx) CreateOccasion(ctx context.Context, o *Occasion) error {
	return createOccasion(ctx, tx.Tx, o)
}

// GetOccasionByID returns ErrNotFound when no occasion has the ID.
func (db *DB) GetOccasionByID(ctx context.Context, id int64) (*Occasion, error) {
	row := db.QueryRowContext(ctx, `SELECT `+occasionColumns+` FROM occasions WHERE id = ?`, id)

	o, err := scanOccasion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query occasion %d: %w", id, err)
	}
	return o, nil
}

// ListOccasionsForMonth returns the occasions of a Jalali month, recurring
// and year-specific, ordered by day. Recurring Esfand 30 occasions are
// dropped in common years.
func (db *DB) ListOccasionsForMonth(ctx context.Context, year, month int) ([]Occasion, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+occasionColumns+`
		FROM occasions
		WHERE month = ? AND (year = 0 OR year = ?)
		ORDER BY day, id
	`, month, year)
	if err != nil {
		return nil, fmt.Errorf("query occasions for %d/%d: %w", year, month, err)
	}
	return collectOccasions(rows, year)
}

// ListOccasionsForYear returns every occasion falling in a Jalali year,
// ordered by month and day.
func (db *DB) ListOccasionsForYear(ctx context.Context, year int) ([]Occasion, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+occasionColumns+`
		FROM occasions
		WHERE year = 0 OR year = ?
		ORDER BY month, day, id
	`, year)
	if err != nil {
		return nil, fmt.Errorf("query occasions for %d: %w", year, err)
	}
	return collectOccasions(rows, year)
}

func collectOccasions(rows *sql.Rows, year int) ([]Occasion, error) {
	defer rows.Close()

	occasions := []Occasion{}
	for rows.Next() {
		o, err := scanOccasion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan occasion: %w", err)
		}
		if o.OccursIn(year) {
			occasions = append(occasions, *o)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate occasions: %w", err)
	}
	return occasions, nil
}

// DeleteOccasion removes an occasion. Returns ErrNotFound if it does not exist.
func (db *DB) DeleteOccasion(ctx context.Context, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM occasions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete occasion %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountOccasions returns the total number of stored occasions.
func (db *DB) CountOccasions(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM occasions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count occasions: %w", err)
	}
	return n, nil
}
