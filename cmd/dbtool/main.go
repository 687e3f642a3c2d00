package main

import (
	"cargo-feasibility-service/internal/adapters/repositories"
	"cargo-feasibility-service/internal/config"
	"cargo-feasibility-service/internal/platform/db"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres schema and seeds the facility-hours
// table, from a JSON file when HOURS_SEED_PATH is set and from the
// built-in airport table otherwise.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("HOURS_SEED_PATH", "")
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(db); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	rows := repositories.DefaultHoursRows()
	if seedPath != "" {
		loaded, err := loadSeedRows(seedPath)
		if err != nil {
			return err
		}
		rows = loaded
	}

	log.Printf("Seeding facility hours (%d rows)...", len(rows))
	if err := repositories.InsertPostgresHours(db, rows); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}

func loadSeedRows(seedPath string) ([]repositories.HoursSeed, error) {
	bytes, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("seed hours: read %q: %w", seedPath, err)
	}

	var rows []repositories.HoursSeed
	if err := json.Unmarshal(bytes, &rows); err != nil {
		return nil, fmt.Errorf("seed hours: parse json: %w", err)
	}

	return rows, nil
}
