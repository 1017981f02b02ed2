package runlog

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/ilstsp/tsp"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is an SQLite-backed run table.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path and migrates it to the
// latest schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	log.Printf("Opening run store at: %s", path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, path: path}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrateUp applies all embedded migrations.
func (s *Store) migrateUp() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	// m is not closed: that would close the shared *sql.DB.
	m.Log = &migrateLogger{}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	return nil
}

// migrateLogger implements migrate.Logger.
type migrateLogger struct{}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	log.Printf("[migrate] "+format, v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}

// Write implements Sink.
func (s *Store) Write(ctx context.Context, rec tsp.RunRecord) error {
	const query = `INSERT INTO runs (
		run_id, label, cities, started_at, runtime_ns, runtime_to_best_ns,
		iterations, best_iteration, best_distance, iteration_limit, idle_limit,
		constructor, seed, figure
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		rec.RunID.String(), rec.Label, rec.Cities, rec.StartedAt.UTC().Format(time.RFC3339Nano),
		int64(rec.Runtime), int64(rec.RuntimeToBest),
		rec.Iterations, rec.BestIteration, rec.BestDistance, rec.IterationLimit, rec.IdleLimit,
		rec.Constructor, rec.Seed, rec.FigureName(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", rec.RunID, err)
	}

	return nil
}

const selectRuns = `SELECT run_id, label, cities, started_at, runtime_ns, runtime_to_best_ns,
	iterations, best_iteration, best_distance, iteration_limit, idle_limit, constructor, seed
	FROM runs`

// List returns the runs recorded for label, oldest first.
func (s *Store) List(ctx context.Context, label string) ([]tsp.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectRuns+` WHERE label = ? ORDER BY started_at, rowid`, label)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []tsp.RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return out, nil
}

// Best returns the shortest recorded run for label, or nil when none exists.
// Ties go to the earliest run.
func (s *Store) Best(ctx context.Context, label string) (*tsp.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE label = ? ORDER BY best_distance, started_at, rowid LIMIT 1`, label)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (tsp.RunRecord, error) {
	var (
		rec       tsp.RunRecord
		id        string
		startedAt string
		runtime   int64
		toBest    int64
	)
	err := sc.Scan(&id, &rec.Label, &rec.Cities, &startedAt, &runtime, &toBest,
		&rec.Iterations, &rec.BestIteration, &rec.BestDistance, &rec.IterationLimit, &rec.IdleLimit,
		&rec.Constructor, &rec.Seed)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, err
	}
	if err != nil {
		return rec, fmt.Errorf("failed to scan run: %w", err)
	}

	if rec.RunID, err = uuid.Parse(id); err != nil {
		return rec, fmt.Errorf("failed to parse run id %q: %w", id, err)
	}
	if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return rec, fmt.Errorf("failed to parse started_at %q: %w", startedAt, err)
	}
	rec.Runtime = time.Duration(runtime)
	rec.RuntimeToBest = time.Duration(toBest)

	return rec, nil
}
