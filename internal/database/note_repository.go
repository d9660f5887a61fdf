package database

import (
	"fmt"

	"github.com/example/landing/pkg/models"
)

// NoteRepository handles database operations for bookmarked words
type NoteRepository struct{}

// NewNoteRepository creates a new repository instance
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{}
}

// Add bookmarks a word. Bookmarking an already-noted word is a no-op.
func (r *NoteRepository) Add(wordID int64) error {
	_, err := DB.Exec(`
		INSERT INTO note (word_id) VALUES ($1)
		ON CONFLICT (word_id) DO NOTHING
	`, wordID)
	if err != nil {
		return fmt.Errorf("failed to add note: %v", err)
	}
	return nil
}

// Remove deletes a bookmark
func (r *NoteRepository) Remove(wordID int64) error {
	_, err := DB.Exec("DELETE FROM note WHERE word_id = $1", wordID)
	if err != nil {
		return fmt.Errorf("failed to remove note: %v", err)
	}
	return nil
}

// Contains reports whether a word is bookmarked
func (r *NoteRepository) Contains(wordID int64) (bool, error) {
	var count int
	err := DB.Get(&count, "SELECT COUNT(*) FROM note WHERE word_id = $1", wordID)
	if err != nil {
		return false, fmt.Errorf("failed to check note: %v", err)
	}
	return count > 0, nil
}

// GetAllNotedWords returns the bookmarked words ordered by spelling
func (r *NoteRepository) GetAllNotedWords() ([]models.Word, error) {
	var words []models.Word
	err := DB.Select(&words, `
		SELECT word.* FROM word
		JOIN note ON word.id = note.word_id
		ORDER BY word.spelling
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get noted words: %v", err)
	}
	return words, nil
}

// DeleteAll removes every bookmark
func (r *NoteRepository) DeleteAll() error {
	_, err := DB.Exec("DELETE FROM note")
	if err != nil {
		return fmt.Errorf("failed to delete notes: %v", err)
	}
	return nil
}
