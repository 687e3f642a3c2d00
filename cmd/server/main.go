package main

import (
	"cargo-feasibility-service/internal/adapters/airports"
	"cargo-feasibility-service/internal/adapters/cache"
	"cargo-feasibility-service/internal/adapters/distance"
	"cargo-feasibility-service/internal/adapters/flights"
	"cargo-feasibility-service/internal/adapters/reliability"
	"cargo-feasibility-service/internal/adapters/repositories"
	"cargo-feasibility-service/internal/api"
	"cargo-feasibility-service/internal/config"
	"cargo-feasibility-service/internal/platform/db"
	"cargo-feasibility-service/internal/ports"
	"cargo-feasibility-service/internal/services"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, OSRM, SerpApi) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	serpKey := os.Getenv("SERPAPI_KEY")
	if strings.TrimSpace(serpKey) == "" {
		log.Fatal("SERPAPI_KEY is required")
	}

	// DATABASE_URL switches the hours table and persistent caches to
	// Postgres; without it a local SQLite file serves both.
	var (
		store   *sql.DB
		err     error
		useSQL  = os.Getenv("DATABASE_URL")
		dbPath  = config.Get("DB_PATH", "data/app.db")
		isPgsql = strings.TrimSpace(useSQL) != ""
	)
	if isPgsql {
		store, err = db.Open(useSQL)
	} else {
		store, err = openSqlite(dbPath)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := initAndSeed(store, isPgsql, config.Get("HOURS_SEED_PATH", "")); err != nil {
		log.Fatal(err)
	}

	var (
		driveCache    distance.DriveCache
		geocodeCache  distance.GeocodeCache
		hoursProvider ports.FacilityHoursProvider
	)
	if isPgsql {
		driveCache = cache.NewSQLDriveCache(store)
		geocodeCache = cache.NewSQLGeocodeCache(store)
		hoursProvider = repositories.NewSQLHoursRepository(store)
	} else {
		driveCache = cache.NewSqliteDriveCache(store)
		geocodeCache = cache.NewSqliteGeocodeCache(store)
		hoursProvider = repositories.NewSqliteHoursRepository(store)
	}

	// The built-in airport table backstops the database, so an unseeded or
	// unreachable hours table degrades to reference data instead of the
	// fully permissive default.
	hoursProvider = repositories.NewFallbackHoursProvider(hoursProvider, repositories.NewStaticHoursProvider())

	// A Redis layer over the hours table is optional; it pays off when
	// several instances share one reference database.
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		hoursProvider = cache.NewRedisHoursCache(rdb, hoursProvider, cache.DefaultHoursTTL)
	}

	driveProvider := distance.NewOSRMDriveProvider(driveCache, geocodeCache)
	locator := airports.NewStaticLocator(driveProvider)
	flightProvider := flights.NewSerpFlightProvider(serpKey)
	hours := services.NewHoursResolver(hoursProvider)

	var scorer ports.ReliabilityScorer
	if key := os.Getenv("AVIATION_EDGE_KEY"); strings.TrimSpace(key) != "" {
		scorer = reliability.NewAvEdgeScorer(key)
	} else {
		log.Println("AVIATION_EDGE_KEY not set; reliability scoring disabled")
	}

	router := api.NewRouter(locator, driveProvider, flightProvider, hours, scorer)

	// Timeouts are tuned for cold-cache feasibility runs (several external
	// API round trips per request).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(store *sql.DB, isPgsql bool, hoursSeedPath string) error {
	if isPgsql {
		// Postgres schema management belongs to the dbtool; the server
		// assumes an initialized database.
		return nil
	}

	if err := repositories.InitSchema(store); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if hoursSeedPath != "" {
		if err := repositories.SeedHoursFromJSON(store, hoursSeedPath); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
		return nil
	}

	if err := repositories.SeedDefaultHours(store); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
