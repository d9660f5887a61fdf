package database

import (
	"fmt"

	"github.com/example/landing/internal/cache"
	"github.com/example/landing/pkg/models"
)

// VocabularyRepository handles lookups of the word-book catalog. The catalog
// never changes during a session, so the list is served through a
// read-through cache.
type VocabularyRepository struct {
	cache *cache.Cache[struct{}, []models.Vocabulary]
}

// NewVocabularyRepository creates a new repository instance
func NewVocabularyRepository() *VocabularyRepository {
	return &VocabularyRepository{
		cache: cache.New(func(struct{}) ([]models.Vocabulary, error) {
			var list []models.Vocabulary
			err := DB.Select(&list, "SELECT * FROM vocabulary ORDER BY name")
			if err != nil {
				return nil, fmt.Errorf("failed to get vocabulary list: %v", err)
			}
			return list, nil
		}),
	}
}

// GetVocabularyList returns all word books, cached after the first call
func (r *VocabularyRepository) GetVocabularyList() ([]models.Vocabulary, error) {
	return r.cache.Get(struct{}{})
}

// GetVocabulary returns one word book by name, or nil when unknown
func (r *VocabularyRepository) GetVocabulary(name models.VocabularyName) (*models.Vocabulary, error) {
	list, err := r.GetVocabularyList()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Name == name {
			return &list[i], nil
		}
	}
	return nil, nil
}

// Invalidate drops the cached catalog
func (r *VocabularyRepository) Invalidate() {
	r.cache.Invalidate()
}
