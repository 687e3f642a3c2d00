package cache

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLDriveCache is a Postgres-backed cache for origin->destination drive metrics.
type SQLDriveCache struct {
	DB *sql.DB
}

func NewSQLDriveCache(db *sql.DB) *SQLDriveCache {
	return &SQLDriveCache{DB: db}
}

// Fetch the cached drive metrics for a single origin/destination pair.
func (s *SQLDriveCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ domain.DriveMetrics, _ bool, err error) {
	defer obs.Time(ctx, "drive.cache.Get")(&err)

	if s.DB == nil {
		return domain.DriveMetrics{}, false, errors.New("drive cache: db is nil")
	}

	if origin == "" || destination == "" {
		return domain.DriveMetrics{}, false, errors.New("get drive cache: origin and destination must not be empty")
	}

	q := `
	SELECT miles, minutes
    FROM drive_cache
    WHERE origin = $1
        AND destination = $2;
	`

	var m domain.DriveMetrics
	err = s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&m.Miles, &m.Minutes)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DriveMetrics{}, false, nil
	}
	if err != nil {
		return domain.DriveMetrics{}, false, fmt.Errorf("get drive cache: query drive_cache table: %w", err)
	}

	return m, true, nil
}

// Store the drive metrics for a single origin/destination pair.
func (s *SQLDriveCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	m domain.DriveMetrics,
) error {
	if s.DB == nil {
		return errors.New("drive cache: db is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert drive cache: origin and destination must not be empty")
	}

	q := `
	INSERT INTO drive_cache (origin, destination, miles, minutes)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET miles = EXCLUDED.miles,
		minutes = EXCLUDED.minutes;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, m.Miles, m.Minutes); err != nil {
		return fmt.Errorf("insert drive cache dest=%q: %w", destination, err)
	}

	return nil
}
