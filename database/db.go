package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Store owns the durable database handle and serializes mutating access to
// each user's task corpus. All task and credential operations go through it.
type Store struct {
	db     *sql.DB
	driver string
	logger *slog.Logger

	// registerMu makes the duplicate-username check and the insert one
	// atomic unit; the UNIQUE constraint is the backstop.
	registerMu sync.Mutex

	// userLocks serializes read-modify-write sequences (position
	// assignment in AddTasks) per user.
	locksMu   sync.Mutex
	userLocks map[string]*sync.Mutex
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id        TEXT PRIMARY KEY,
	user_id   TEXT NOT NULL REFERENCES users(id),
	year      INTEGER NOT NULL,
	month     INTEGER NOT NULL,
	day       INTEGER NOT NULL,
	text      TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	position  BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user_month ON tasks (user_id, year, month);
`

// New opens the database for the given driver ("sqlite" or "postgres"),
// verifies the connection and ensures the schema exists.
func New(driver, dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == "sqlite" {
		for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
			if _, err := db.Exec(pragma); err != nil {
				db.Close()
				return nil, fmt.Errorf("%s: %w", pragma, err)
			}
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("connected to database", "driver", driver)

	return &Store{
		db:        db,
		driver:    driver,
		logger:    logger,
		userLocks: make(map[string]*sync.Mutex),
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the durable store is reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// userLock returns the mutex serializing mutations for one user.
func (s *Store) userLock(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.userLocks[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.userLocks[userID] = mu
	}
	return mu
}

// rebind rewrites ? placeholders to the $N form lib/pq expects. Queries are
// written once in the ? dialect shared by sqlite.
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
