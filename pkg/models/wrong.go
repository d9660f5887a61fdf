package models

// Wrong records a missed exercise item. The ledger is keyed by word, not by
// lesson: a later mistake on the same word re-points StudyProgressID to the
// newer lesson instead of inserting a second row.
type Wrong struct {
	WordID          int64 `json:"word_id" db:"word_id"`
	StudyProgressID int64 `json:"study_progress_id" db:"study_progress_id"`
	ChosenWrong     bool  `json:"chosen_wrong" db:"chosen_wrong"`
	SpelledWrong    bool  `json:"spelled_wrong" db:"spelled_wrong"`
}
