package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/taskline/internal/task"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema
const currentSchemaVersion = 1

// DefaultPath is the journal file used when no override is configured.
const DefaultPath = "tasks.journal.db"

// Operation names recorded in entries.
const (
	OpAdd  = "add"
	OpEdit = "edit"
)

// Entry is one recorded mutation.
type Entry struct {
	Seq       int64  `json:"seq"`
	Token     string `json:"token"`
	Op        string `json:"op"`
	TaskID    int    `json:"task_id"`
	Payload   string `json:"payload"` // JSON of the task after the mutation
	CreatedAt string `json:"created_at"`
}

// Journal is a SQLite-backed append-only mutation log.
type Journal struct {
	db *sql.DB
}

// Open creates or opens the journal database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Append records a mutation. The entry token is a fresh UUIDv7; duplicate
// tokens are silently ignored (ON CONFLICT DO NOTHING) so replayed appends
// are idempotent.
func (j *Journal) Append(ctx context.Context, op string, t task.Task) (Entry, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return Entry{}, fmt.Errorf("append entry: encode task: %w", err)
	}

	entry := Entry{
		Token:   uuid.Must(uuid.NewV7()).String(),
		Op:      op,
		TaskID:  t.ID,
		Payload: string(payload),
	}

	res, err := j.db.ExecContext(ctx, `
		INSERT INTO entries (token, op, task_id, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(token) DO NOTHING
	`, entry.Token, entry.Op, entry.TaskID, entry.Payload)
	if err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}

	entry.Seq, err = res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}
	return entry, nil
}

// List returns all entries ordered by seq.
// Returns an empty slice (not nil) when the journal is empty.
func (j *Journal) List(ctx context.Context) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, token, op, task_id, payload, created_at
		FROM entries
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Seq, &e.Token, &e.Op, &e.TaskID, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist and stamps the schema
// version. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}
