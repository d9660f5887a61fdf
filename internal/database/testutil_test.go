package database

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/example/landing/pkg/models"
)

// setupTestDB points the package-global connection at an in-memory database
// with the full schema. Tests share the global, so they must not run parallel.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)

	// A second pool connection would see its own empty in-memory database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	prev := DB
	DB = db
	require.NoError(t, initializeSchema())

	t.Cleanup(func() {
		DB = prev
		db.Close()
	})
}

// seedWords inserts n words spelled word001, word002, ... returning their IDs
func seedWords(t *testing.T, n int) []int64 {
	t.Helper()

	ids := make([]int64, 0, n)
	for i := 1; i <= n; i++ {
		res, err := DB.Exec(
			"INSERT INTO word (spelling, ipa, cn, en, pron_name) VALUES ($1, $2, $3, $4, $5)",
			fmt.Sprintf("word%03d", i), "", "{}", "{}", "",
		)
		require.NoError(t, err)
		id, err := res.LastInsertId()
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// seedProgress inserts a lesson row directly
func seedProgress(t *testing.T, id int64, start, wordListSize int, finishedDate string) {
	t.Helper()

	var finished sql.NullString
	if finishedDate != "" {
		finished = sql.NullString{String: finishedDate, Valid: true}
	}
	progress := &models.StudyProgress{
		ID:             id,
		VocabularyName: models.VocabularyBeginner,
		Start:          start,
		WordListSize:   wordListSize,
		ProgressState:  models.ProgressStateLearn,
		FinishedDate:   finished,
	}
	require.NoError(t, NewProgressRepository().Insert(progress))
}

func countRows(t *testing.T, table string) int {
	t.Helper()

	var count int
	require.NoError(t, DB.Get(&count, "SELECT COUNT(*) FROM "+table))
	return count
}
