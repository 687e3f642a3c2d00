package repositories

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLHoursRepository reads facility hours from Postgres. Airport-level rows
// are stored with an empty carrier column; carrier rows override them via
// the resolver's fallback chain, not in SQL.
type SQLHoursRepository struct {
	DB *sql.DB
}

func NewSQLHoursRepository(db *sql.DB) *SQLHoursRepository {
	return &SQLHoursRepository{DB: db}
}

func (r *SQLHoursRepository) CarrierHours(
	ctx context.Context,
	airport string,
	carrier string,
	category domain.DayCategory,
) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "hours.repo.CarrierHours")(&err)

	if r.DB == nil {
		return "", false, errors.New("hours repository: db is nil")
	}

	q := `
	SELECT hours_text
    FROM facility_hours
    WHERE airport = $1
        AND carrier = $2
        AND day_category = $3;
	`

	var hours string
	err = r.DB.QueryRowContext(ctx, q, airport, carrier, category.String()).Scan(&hours)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("carrier hours: query facility_hours table: %w", err)
	}

	return hours, true, nil
}

func (r *SQLHoursRepository) AirportHours(
	ctx context.Context,
	airport string,
	category domain.DayCategory,
) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "hours.repo.AirportHours")(&err)

	if r.DB == nil {
		return "", false, errors.New("hours repository: db is nil")
	}

	q := `
	SELECT hours_text
    FROM facility_hours
    WHERE airport = $1
        AND carrier = ''
        AND day_category = $2;
	`

	var hours string
	err = r.DB.QueryRowContext(ctx, q, airport, category.String()).Scan(&hours)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("airport hours: query facility_hours table: %w", err)
	}

	return hours, true, nil
}
