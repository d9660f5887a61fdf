package models

// StudyPlan is the single active enrollment in a vocabulary with a daily quota.
// At most one row exists; creating a new plan replaces the old one together
// with all of its progress and wrong-word history.
type StudyPlan struct {
	ID             int64          `json:"id" db:"id"`
	VocabularyName VocabularyName `json:"vocabulary_name" db:"vocabulary_name"`
	VocabularySize int            `json:"vocabulary_size" db:"vocabulary_size"`
	WordListSize   int            `json:"word_list_size" db:"word_list_size"` // words per lesson
	StartDate      string         `json:"start_date" db:"start_date"`         // YYYY-MM-DD
	Finished       bool           `json:"finished" db:"finished"`
}
