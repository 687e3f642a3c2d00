package repositories

import (
	"cargo-feasibility-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite backed facility-hours lookup. Same row layout as the Postgres
// variant: airport-level entries carry an empty carrier column.
type SqliteHoursRepository struct {
	DB *sql.DB
}

func NewSqliteHoursRepository(db *sql.DB) *SqliteHoursRepository {
	return &SqliteHoursRepository{DB: db}
}

func (r *SqliteHoursRepository) CarrierHours(
	ctx context.Context,
	airport string,
	carrier string,
	category domain.DayCategory,
) (string, bool, error) {
	if r.DB == nil {
		return "", false, errors.New("hours repository: db is nil")
	}

	q := `
	SELECT hours_text
    FROM facility_hours
    WHERE airport = ?
        AND carrier = ?
        AND day_category = ?;
	`

	var hours string
	err := r.DB.QueryRowContext(ctx, q, airport, carrier, category.String()).Scan(&hours)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("carrier hours: query facility_hours table: %w", err)
	}

	return hours, true, nil
}

func (r *SqliteHoursRepository) AirportHours(
	ctx context.Context,
	airport string,
	category domain.DayCategory,
) (string, bool, error) {
	if r.DB == nil {
		return "", false, errors.New("hours repository: db is nil")
	}

	q := `
	SELECT hours_text
    FROM facility_hours
    WHERE airport = ?
        AND carrier = ''
        AND day_category = ?;
	`

	var hours string
	err := r.DB.QueryRowContext(ctx, q, airport, category.String()).Scan(&hours)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("airport hours: query facility_hours table: %w", err)
	}

	return hours, true, nil
}
