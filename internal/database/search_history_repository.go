package database

import (
	"fmt"

	"github.com/example/landing/pkg/models"
)

// SearchHistoryRepository handles database operations for dictionary search history
type SearchHistoryRepository struct{}

// NewSearchHistoryRepository creates a new repository instance
func NewSearchHistoryRepository() *SearchHistoryRepository {
	return &SearchHistoryRepository{}
}

// Insert records one search
func (r *SearchHistoryRepository) Insert(spelling, searchDate string) error {
	_, err := DB.Exec(
		"INSERT INTO search_history (spelling, search_date) VALUES ($1, $2)",
		spelling, searchDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert search history: %v", err)
	}
	return nil
}

// GetHistoryList returns the search history, newest first
func (r *SearchHistoryRepository) GetHistoryList() ([]models.SearchHistory, error) {
	var history []models.SearchHistory
	err := DB.Select(&history, "SELECT * FROM search_history ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get search history: %v", err)
	}
	return history, nil
}

// DeleteAll clears the search history
func (r *SearchHistoryRepository) DeleteAll() error {
	_, err := DB.Exec("DELETE FROM search_history")
	if err != nil {
		return fmt.Errorf("failed to delete search history: %v", err)
	}
	return nil
}
