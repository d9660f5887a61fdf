package database

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/example/landing/pkg/models"
)

// WrongRepository handles database operations for the wrong-word ledger.
// The ledger holds at most one row per word: a later mistake on the same word
// re-points the row to the newer lesson instead of inserting a second one, so
// a word only ever shows as wrong in the context of its most recent offending
// lesson.
type WrongRepository struct {
	mu sync.Mutex
}

// NewWrongRepository creates a new repository instance
func NewWrongRepository() *WrongRepository {
	return &WrongRepository{}
}

// AddChosenWrong records a choice-phase mistake. A fresh word gets a new row;
// an existing row is re-pointed to the current lesson with its flags untouched.
func (r *WrongRepository) AddChosenWrong(wordID, studyProgressID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := DB.Exec(`
		INSERT INTO wrong (word_id, study_progress_id, chosen_wrong, spelled_wrong)
		VALUES ($1, $2, true, false)
		ON CONFLICT (word_id) DO UPDATE SET
			study_progress_id = excluded.study_progress_id
	`, wordID, studyProgressID)
	if err != nil {
		return fmt.Errorf("failed to add chosen wrong: %v", err)
	}
	return nil
}

// AddSpelledWrong records a spelling-phase mistake. An existing row is updated
// in place and re-pointed to the current lesson; otherwise a new row is
// inserted. The lookup and write run under one lock so two simultaneous
// mistakes on the same word cannot both insert.
func (r *WrongRepository) AddSpelledWrong(wordID, studyProgressID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var existing models.Wrong
	err := DB.Get(&existing, "SELECT * FROM wrong WHERE word_id = $1", wordID)
	if err == sql.ErrNoRows {
		_, err = DB.Exec(`
			INSERT INTO wrong (word_id, study_progress_id, chosen_wrong, spelled_wrong)
			VALUES ($1, $2, false, true)
		`, wordID, studyProgressID)
		if err != nil {
			return fmt.Errorf("failed to add spelled wrong: %v", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up wrong word: %v", err)
	}

	_, err = DB.Exec(`
		UPDATE wrong
		SET spelled_wrong = true, study_progress_id = $1
		WHERE word_id = $2
	`, studyProgressID, wordID)
	if err != nil {
		return fmt.Errorf("failed to update spelled wrong: %v", err)
	}
	return nil
}

// GetChosenWrong returns the words whose ledger row currently points at the
// given lesson with the choice flag set. A row re-pointed by a later lesson no
// longer shows up for the older one.
func (r *WrongRepository) GetChosenWrong(studyProgressID int64) ([]models.Word, error) {
	var words []models.Word
	err := DB.Select(&words, `
		SELECT word.* FROM word
		JOIN wrong ON word.id = wrong.word_id
		WHERE wrong.study_progress_id = $1 AND wrong.chosen_wrong = true
		ORDER BY word.id
	`, studyProgressID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chosen wrong words: %v", err)
	}
	return words, nil
}

// GetSpelledWrong returns the words whose ledger row currently points at the
// given lesson with the spelling flag set.
func (r *WrongRepository) GetSpelledWrong(studyProgressID int64) ([]models.Word, error) {
	var words []models.Word
	err := DB.Select(&words, `
		SELECT word.* FROM word
		JOIN wrong ON word.id = wrong.word_id
		WHERE wrong.study_progress_id = $1 AND wrong.spelled_wrong = true
		ORDER BY word.id
	`, studyProgressID)
	if err != nil {
		return nil, fmt.Errorf("failed to get spelled wrong words: %v", err)
	}
	return words, nil
}

// GetByWordID returns the ledger row for a word, or nil when the word has
// never been missed.
func (r *WrongRepository) GetByWordID(wordID int64) (*models.Wrong, error) {
	var wrong models.Wrong
	err := DB.Get(&wrong, "SELECT * FROM wrong WHERE word_id = $1", wordID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wrong by word ID: %v", err)
	}
	return &wrong, nil
}

// ClearAll deletes the entire ledger. Used when the plan is deleted.
func (r *WrongRepository) ClearAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := DB.Exec("DELETE FROM wrong")
	if err != nil {
		return fmt.Errorf("failed to clear wrong words: %v", err)
	}
	return nil
}
