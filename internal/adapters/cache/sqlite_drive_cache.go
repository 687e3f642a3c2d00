package cache

import (
	"cargo-feasibility-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite backed cache for origin->destination drive metrics.
// Keys are expected to be consistent (e.g., already normalized)
// by the caller.
type SqliteDriveCache struct {
	DB *sql.DB
}

func NewSqliteDriveCache(db *sql.DB) *SqliteDriveCache {
	return &SqliteDriveCache{DB: db}
}

// Fetch the cached drive metrics for a single origin/destination pair.
func (s *SqliteDriveCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (domain.DriveMetrics, bool, error) {
	if s.DB == nil {
		return domain.DriveMetrics{}, false, errors.New("drive cache: db is nil")
	}

	if origin == "" || destination == "" {
		return domain.DriveMetrics{}, false, errors.New("get drive cache: origin and destination must not be empty")
	}

	q := `
	SELECT miles, minutes
    FROM drive_cache
    WHERE origin = ?
        AND destination = ?;
	`

	var m domain.DriveMetrics
	err := s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&m.Miles, &m.Minutes)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DriveMetrics{}, false, nil
	}
	if err != nil {
		return domain.DriveMetrics{}, false, fmt.Errorf("get drive cache: query drive_cache table: %w", err)
	}

	return m, true, nil
}

// Store the drive metrics for a single origin/destination pair.
func (s *SqliteDriveCache) Put(
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
	INSERT OR REPLACE INTO drive_cache (
        origin,
        destination,
        miles,
        minutes
    )
    VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, m.Miles, m.Minutes); err != nil {
		return fmt.Errorf("insert drive cache dest=%q: %w", destination, err)
	}

	return nil
}
