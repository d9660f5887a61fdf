package models

// Note bookmarks a word for later review
type Note struct {
	WordID int64 `json:"word_id" db:"word_id"`
}
