package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SchemaVersion is a single monotonically increasing integer. A stored
// version that doesn't match triggers a destructive upgrade: the old
// tables are dropped and recreated, no rows survive.
const SchemaVersion = 1

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Foreign keys are off by default in SQLite; the reminder cascade
	// depends on them.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// Migrate brings the schema to SchemaVersion. It reports whether the
// tables were freshly created, so the caller can decide to seed sample
// data on a first run.
func (db *DB) Migrate() (bool, error) {
	current, err := db.schemaVersion()
	if err != nil {
		return false, err
	}
	if current == SchemaVersion {
		return false, nil
	}

	if current != 0 {
		if err := db.dropTables(); err != nil {
			return false, err
		}
	}

	if err := db.createTables(); err != nil {
		return false, err
	}

	if err := db.setSchemaVersion(SchemaVersion); err != nil {
		return false, err
	}

	return true, nil
}

func (db *DB) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			priority INTEGER DEFAULT 1,
			due_date TEXT,
			is_done INTEGER DEFAULT 0,
			created_at TEXT DEFAULT (datetime('now','localtime'))
		)`,

		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			note_text TEXT NOT NULL,
			tag TEXT,
			created_at TEXT DEFAULT (datetime('now','localtime')),
			updated_at TEXT DEFAULT (datetime('now','localtime'))
		)`,

		`CREATE TABLE IF NOT EXISTS reminders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			reminder_time TEXT NOT NULL,
			is_triggered INTEGER DEFAULT 0,
			FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
		)`,

		// Indexes for the hot filters
		`CREATE INDEX IF NOT EXISTS idx_reminders_task_id ON reminders(task_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks(priority)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_is_done ON tasks(is_done)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// dropTables removes all entity tables in dependency order so the
// reminder foreign key never dangles mid-upgrade.
func (db *DB) dropTables() error {
	for _, table := range []string{"reminders", "notes", "tasks"} {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}

func (db *DB) schemaVersion() (int, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`)
	if err != nil {
		return 0, fmt.Errorf("failed to create version table: %w", err)
	}

	var version int
	err = db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func (db *DB) setSchemaVersion(version int) error {
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("failed to reset schema version: %w", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return fmt.Errorf("failed to write schema version: %w", err)
	}
	return nil
}

// Seed inserts a small fixed set of demonstration rows: two tasks, two
// notes and one reminder attached to the first task. Bootstrap
// convenience only; skipped in tests and non-interactive environments.
func (db *DB) Seed() error {
	res, err := db.Exec(`
		INSERT INTO tasks (title, description, priority, due_date, is_done)
		VALUES (?, ?, ?, ?, ?)
	`, "Finish the report", "Write the final project report", 3, "2025-10-27 15:00:00", 0)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	firstTaskID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	inserts := []struct {
		query string
		args  []interface{}
	}{
		{
			`INSERT INTO tasks (title, description, priority, due_date, is_done) VALUES (?, ?, ?, ?, ?)`,
			[]interface{}{"Buy supplies", "Buy office supplies", 2, "2025-10-26 10:00:00", 1},
		},
		{
			`INSERT INTO notes (note_text, tag) VALUES (?, ?)`,
			[]interface{}{"Call the client tomorrow to confirm the appointment", "work"},
		},
		{
			`INSERT INTO notes (note_text, tag) VALUES (?, ?)`,
			[]interface{}{"Idea for a new project: a time management app", "ideas"},
		},
		{
			`INSERT INTO reminders (task_id, reminder_time, is_triggered) VALUES (?, ?, ?)`,
			[]interface{}{firstTaskID, "2025-10-27 14:30:00", 0},
		},
	}

	for _, ins := range inserts {
		if _, err := db.Exec(ins.query, ins.args...); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
