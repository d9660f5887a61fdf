package models

import "database/sql"

// ProgressState is the exercise phase a lesson is currently in
type ProgressState string

const (
	// ProgressStateLearn is the word-list learning phase
	ProgressStateLearn ProgressState = "LEARN"
	// ProgressStateChoice is the multiple-choice phase
	ProgressStateChoice ProgressState = "CHOICE"
	// ProgressStateSpelling is the spelling phase, terminal within a lesson
	ProgressStateSpelling ProgressState = "SPELLING"
)

// Next returns the following phase. Phases only move forward; SPELLING
// is terminal and returns itself.
func (s ProgressState) Next() ProgressState {
	switch s {
	case ProgressStateLearn:
		return ProgressStateChoice
	case ProgressStateChoice:
		return ProgressStateSpelling
	default:
		return ProgressStateSpelling
	}
}

// StudyProgress is one lesson: a quota-sized slice of the vocabulary and the
// user's advancement through its three phases. Rows are ordered by ID starting
// at 1 and are only ever created by the session engine.
type StudyProgress struct {
	ID             int64          `json:"id" db:"id"`
	VocabularyName VocabularyName `json:"vocabulary_name" db:"vocabulary_name"`
	Start          int            `json:"start" db:"start"` // offset into the vocabulary
	WordListSize   int            `json:"word_list_size" db:"word_list_size"`
	Learned        int            `json:"learned" db:"learned"`
	Chosen         int            `json:"chosen" db:"chosen"`
	Spelled        int            `json:"spelled" db:"spelled"`
	ProgressState  ProgressState  `json:"progress_state" db:"progress_state"`
	FinishedDate   sql.NullString `json:"finished_date" db:"finished_date"` // YYYY-MM-DD, null while open
}
