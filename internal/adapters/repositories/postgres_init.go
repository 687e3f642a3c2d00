package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema. Mirrors the SQLite layout so
// either backend can serve the hours table and the drive/geocode caches.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS facility_hours (
	        airport TEXT NOT NULL,
	        carrier TEXT NOT NULL DEFAULT '',
	        day_category TEXT NOT NULL,
	        hours_text TEXT NOT NULL,
	        PRIMARY KEY (airport, carrier, day_category)
	    );
		`,
		`
		CREATE TABLE IF NOT EXISTS drive_cache (
	        origin TEXT NOT NULL,
	        destination TEXT NOT NULL,
	        miles DOUBLE PRECISION NOT NULL,
	        minutes INTEGER NOT NULL,
	        PRIMARY KEY (origin, destination)
	    );
		`,
		`
		CREATE TABLE IF NOT EXISTS geocode_cache (
	        address TEXT PRIMARY KEY,
	        lon DOUBLE PRECISION NOT NULL,
	        lat DOUBLE PRECISION NOT NULL
	    );
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_facility_hours_airport
	    ON facility_hours(airport, day_category);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Upsert facility-hours rows into Postgres.
func InsertPostgresHours(db *sql.DB, rows []HoursSeed) error {
	if db == nil {
		return errors.New("seed hours: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed hours: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO facility_hours (airport, carrier, day_category, hours_text)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (airport, carrier, day_category) DO UPDATE
	SET hours_text = EXCLUDED.hours_text;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed hours: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Airport, r.Carrier, r.DayCategory, r.Hours); err != nil {
			return fmt.Errorf("seed hours: insert airport=%s carrier=%s: %w", r.Airport, r.Carrier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed hours: commit tx: %w", err)
	}

	return nil
}

// DefaultHoursRows exposes the built-in airport hours table as seed rows,
// one per day category.
func DefaultHoursRows() []HoursSeed {
	rows := make([]HoursSeed, 0, len(defaultAirportHours)*3)
	for airport, hours := range defaultAirportHours {
		for _, category := range []string{"weekday", "saturday", "sunday"} {
			rows = append(rows, HoursSeed{
				Airport:     airport,
				DayCategory: category,
				Hours:       hours,
			})
		}
	}
	return rows
}
