package database

import (
	"database/sql"
	"fmt"

	"github.com/example/landing/pkg/models"
)

// ProgressRepository handles database operations for lesson progress
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// GetLatest returns the most recent lesson by id, or nil when no lesson exists
func (r *ProgressRepository) GetLatest() (*models.StudyProgress, error) {
	var progress models.StudyProgress
	err := DB.Get(&progress, "SELECT * FROM study_progress ORDER BY id DESC LIMIT 1")
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest study progress: %v", err)
	}
	return &progress, nil
}

// GetByID returns a lesson by its sequence number
func (r *ProgressRepository) GetByID(id int64) (*models.StudyProgress, error) {
	var progress models.StudyProgress
	err := DB.Get(&progress, "SELECT * FROM study_progress WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get study progress by ID: %v", err)
	}
	return &progress, nil
}

// Insert creates a new lesson row. Only the session engine calls this: once
// for the first lesson and once per day-boundary rollover.
func (r *ProgressRepository) Insert(progress *models.StudyProgress) error {
	if progress.ProgressState == "" {
		progress.ProgressState = models.ProgressStateLearn
	}
	_, err := DB.Exec(`
		INSERT INTO study_progress (id, vocabulary_name, start, word_list_size, learned, chosen, spelled, progress_state, finished_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		progress.ID,
		progress.VocabularyName,
		progress.Start,
		progress.WordListSize,
		progress.Learned,
		progress.Chosen,
		progress.Spelled,
		progress.ProgressState,
		progress.FinishedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert study progress: %v", err)
	}
	progressNotifier.Notify()
	return nil
}

// AdvancePhase moves a lesson to its next phase. Phases only move forward;
// a lesson already in SPELLING stays there.
func (r *ProgressRepository) AdvancePhase(id int64) error {
	_, err := DB.Exec(`
		UPDATE study_progress
		SET progress_state = CASE progress_state
			WHEN 'LEARN' THEN 'CHOICE'
			WHEN 'CHOICE' THEN 'SPELLING'
			ELSE progress_state
		END
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to advance progress phase: %v", err)
	}
	progressNotifier.Notify()
	return nil
}

// IncrementLearned counts one more word through the learn phase
func (r *ProgressRepository) IncrementLearned(id int64) error {
	return r.incrementCounter(id, "learned")
}

// IncrementChosen counts one more word through the choice phase
func (r *ProgressRepository) IncrementChosen(id int64) error {
	return r.incrementCounter(id, "chosen")
}

// IncrementSpelled counts one more word through the spelling phase
func (r *ProgressRepository) IncrementSpelled(id int64) error {
	return r.incrementCounter(id, "spelled")
}

func (r *ProgressRepository) incrementCounter(id int64, column string) error {
	// Counters never exceed the lesson's word list size
	query := fmt.Sprintf(`
		UPDATE study_progress
		SET %s = %s + 1
		WHERE id = $1 AND %s < word_list_size
	`, column, column, column)
	_, err := DB.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %v", column, err)
	}
	progressNotifier.Notify()
	return nil
}

// MarkFinished records the lesson's completion date. The date is written at
// most once and never cleared.
func (r *ProgressRepository) MarkFinished(id int64, date string) error {
	_, err := DB.Exec(`
		UPDATE study_progress
		SET finished_date = $1
		WHERE id = $2 AND finished_date IS NULL
	`, date, id)
	if err != nil {
		return fmt.Errorf("failed to mark study progress finished: %v", err)
	}
	progressNotifier.Notify()
	return nil
}

// DeleteAll removes all lesson history. Wrong rows cascade with their lessons.
func (r *ProgressRepository) DeleteAll() error {
	_, err := DB.Exec("DELETE FROM study_progress")
	if err != nil {
		return fmt.Errorf("failed to delete study progress: %v", err)
	}
	progressNotifier.Notify()
	return nil
}

// LatestLessonReport returns the percentage completed for each phase of the
// latest lesson, in the order learned, chosen, spelled. An absent lesson is a
// normal state and reports zeros.
func (r *ProgressRepository) LatestLessonReport(wordListSize int) ([3]float64, error) {
	var report [3]float64

	progress, err := r.GetLatest()
	if err != nil {
		return report, err
	}
	if progress == nil || wordListSize <= 0 {
		return report, nil
	}

	report[0] = percent(progress.Learned, wordListSize)
	report[1] = percent(progress.Chosen, wordListSize)
	report[2] = percent(progress.Spelled, wordListSize)
	return report, nil
}

// TotalReport returns the percentage of the vocabulary studied through the
// spelling phase and the remainder.
func (r *ProgressRepository) TotalReport(vocabularySize int) ([2]float64, error) {
	var report [2]float64

	var spelled sql.NullInt64
	err := DB.Get(&spelled, "SELECT SUM(spelled) FROM study_progress")
	if err != nil {
		return report, fmt.Errorf("failed to count spelled words: %v", err)
	}
	if vocabularySize <= 0 {
		return report, nil
	}

	report[0] = percent(int(spelled.Int64), vocabularySize)
	report[1] = 100 - report[0]
	return report, nil
}

// percent returns 100*count/size clamped to [0, 100], with 0 for an empty size
func percent(count, size int) float64 {
	if size <= 0 {
		return 0
	}
	p := 100 * float64(count) / float64(size)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
