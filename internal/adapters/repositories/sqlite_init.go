package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFacilityHoursQuery := `
	CREATE TABLE IF NOT EXISTS facility_hours (
        airport TEXT NOT NULL,
        carrier TEXT NOT NULL DEFAULT '',
        day_category TEXT NOT NULL,
        hours_text TEXT NOT NULL,
        PRIMARY KEY (airport, carrier, day_category)
    );
	`

	createDriveCacheQuery := `
	CREATE TABLE IF NOT EXISTS drive_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        miles REAL NOT NULL,
        minutes INTEGER NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon REAL NOT NULL,
        lat REAL NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_facility_hours_airport
    ON facility_hours(airport, day_category);
	`

	statements := []string{
		createFacilityHoursQuery,
		createDriveCacheQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type HoursSeed struct {
	Airport     string `json:"airport"`
	Carrier     string `json:"carrier"`
	DayCategory string `json:"day_category"`
	Hours       string `json:"hours"`
}

// Populate the database with facility-hours data from a JSON file.
func SeedHoursFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed hours: read %q: %w", jsonPath, err)
	}

	var data []HoursSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed hours: parse json: %w", err)
	}

	rows := make([]HoursSeed, 0, len(data))
	for i, item := range data {
		airport := strings.ToUpper(strings.TrimSpace(item.Airport))
		if airport == "" {
			return fmt.Errorf("seed hours: item at index %d: airport cannot be empty", i+1)
		}

		category := strings.ToLower(strings.TrimSpace(item.DayCategory))
		switch category {
		case "weekday", "saturday", "sunday":
		default:
			return fmt.Errorf("seed hours: item at index %d: unknown day_category %q", i+1, item.DayCategory)
		}

		if strings.TrimSpace(item.Hours) == "" {
			return fmt.Errorf("seed hours: item at index %d: hours cannot be empty", i+1)
		}

		rows = append(rows, HoursSeed{
			Airport:     airport,
			Carrier:     strings.ToUpper(strings.TrimSpace(item.Carrier)),
			DayCategory: category,
			Hours:       strings.TrimSpace(item.Hours),
		})
	}

	return insertHours(db, rows)
}

// Populate the database with the built-in airport hours table, one row per
// day category so carrier overrides can later refine single categories.
func SeedDefaultHours(db *sql.DB) error {
	return insertHours(db, DefaultHoursRows())
}

func insertHours(db *sql.DB, rows []HoursSeed) error {
	if db == nil {
		return errors.New("seed hours: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed hours: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO facility_hours (
		airport,
		carrier,
		day_category,
		hours_text
	)
	VALUES (?, ?, ?, ?);
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
