package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. The default backend is a
// local SQLite file; set DB_TYPE=postgres and DATABASE_URL to use PostgreSQL.
func Connect() error {
	// Postgres schema is provisioned externally; only the SQLite file is
	// bootstrapped here.
	dbType := os.Getenv("DB_TYPE")
	if dbType == "postgres" {
		db, err := sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		DB = db
		return nil
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "landing.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Wrong rows must be removed together with their lesson
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS study_plan (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			vocabulary_name TEXT NOT NULL,
			vocabulary_size INTEGER NOT NULL,
			word_list_size INTEGER NOT NULL,
			start_date TEXT NOT NULL,
			finished BOOLEAN NOT NULL DEFAULT false
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create study_plan table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS study_progress (
			id INTEGER PRIMARY KEY,
			vocabulary_name TEXT NOT NULL,
			start INTEGER NOT NULL,
			word_list_size INTEGER NOT NULL,
			learned INTEGER NOT NULL DEFAULT 0,
			chosen INTEGER NOT NULL DEFAULT 0,
			spelled INTEGER NOT NULL DEFAULT 0,
			progress_state TEXT NOT NULL DEFAULT 'LEARN',
			finished_date TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create study_progress table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS wrong (
			word_id INTEGER PRIMARY KEY,
			study_progress_id INTEGER NOT NULL,
			chosen_wrong BOOLEAN NOT NULL DEFAULT false,
			spelled_wrong BOOLEAN NOT NULL DEFAULT false,
			FOREIGN KEY (study_progress_id) REFERENCES study_progress(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create wrong table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE INDEX IF NOT EXISTS index_wrong_study_progress_id ON wrong(study_progress_id)
	`)
	if err != nil {
		return fmt.Errorf("failed to create wrong index: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS vocabulary (
			name TEXT PRIMARY KEY,
			size INTEGER NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS word (
			id INTEGER PRIMARY KEY,
			spelling TEXT NOT NULL UNIQUE,
			ipa TEXT NOT NULL DEFAULT '',
			cn TEXT NOT NULL DEFAULT '',
			en TEXT NOT NULL DEFAULT '',
			pron_name TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create word table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS affix_catalog (
			id INTEGER PRIMARY KEY,
			type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create affix_catalog table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS affix (
			id INTEGER PRIMARY KEY,
			catalog_id INTEGER NOT NULL,
			text TEXT NOT NULL,
			meaning TEXT NOT NULL DEFAULT '',
			example TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (catalog_id) REFERENCES affix_catalog(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create affix table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS help_catalog (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create help_catalog table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS help (
			id INTEGER PRIMARY KEY,
			catalog_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (catalog_id) REFERENCES help_catalog(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create help table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS note (
			word_id INTEGER PRIMARY KEY,
			FOREIGN KEY (word_id) REFERENCES word(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create note table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS search_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			spelling TEXT NOT NULL,
			search_date TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create search_history table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create preferences table: %v", err)
	}

	return nil
}
