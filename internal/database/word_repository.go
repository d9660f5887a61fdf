package database

import (
	"database/sql"
	"fmt"

	"github.com/example/landing/internal/cache"
	"github.com/example/landing/pkg/models"
)

// WordRange identifies one lesson-sized slice of the vocabulary. The cache is
// keyed on the whole tuple: two lookups that differ in either field are
// different queries and must both reach the store.
type WordRange struct {
	Start int
	Size  int
}

// WordRepository handles database operations for dictionary words. Lesson word
// lists are read-mostly and served through a read-through cache; point lookups
// for search stay uncached.
type WordRepository struct {
	listCache *cache.Cache[WordRange, []models.Word]
}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{
		listCache: cache.New(func(rng WordRange) ([]models.Word, error) {
			var words []models.Word
			err := DB.Select(&words, "SELECT * FROM word ORDER BY id LIMIT $1 OFFSET $2", rng.Size, rng.Start)
			if err != nil {
				return nil, fmt.Errorf("failed to get word list: %v", err)
			}
			return words, nil
		}),
	}
}

// GetWordList returns the words of one lesson slice, cached per (start, size)
func (r *WordRepository) GetWordList(start, size int) ([]models.Word, error) {
	return r.listCache.Get(WordRange{Start: start, Size: size})
}

// GetByID returns a word by ID, or nil when unknown
func (r *WordRepository) GetByID(id int64) (*models.Word, error) {
	var word models.Word
	err := DB.Get(&word, "SELECT * FROM word WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word by ID: %v", err)
	}
	return &word, nil
}

// SearchWord returns the word with the exact spelling, or nil when unknown
func (r *WordRepository) SearchWord(spelling string) (*models.Word, error) {
	var word models.Word
	err := DB.Get(&word, "SELECT * FROM word WHERE spelling = $1", spelling)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search word: %v", err)
	}
	return &word, nil
}

// GetSearchSuggestions returns spellings starting with the given prefix
func (r *WordRepository) GetSearchSuggestions(prefix string) ([]string, error) {
	var suggestions []string
	err := DB.Select(&suggestions,
		"SELECT spelling FROM word WHERE spelling LIKE $1 ORDER BY spelling LIMIT 10",
		prefix+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get search suggestions: %v", err)
	}
	return suggestions, nil
}

// Invalidate drops the cached word lists
func (r *WordRepository) Invalidate() {
	r.listCache.Invalidate()
}
