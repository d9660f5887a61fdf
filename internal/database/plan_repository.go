package database

import (
	"database/sql"
	"fmt"

	"github.com/example/landing/pkg/models"
)

// PlanRepository handles database operations for the study plan
type PlanRepository struct{}

// NewPlanRepository creates a new repository instance
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

// Get returns the current study plan, or nil when no plan exists
func (r *PlanRepository) Get() (*models.StudyPlan, error) {
	var plan models.StudyPlan
	err := DB.Get(&plan, "SELECT * FROM study_plan WHERE id = 1")
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get study plan: %v", err)
	}
	return &plan, nil
}

// Upsert creates or replaces the study plan. The plan is a singleton row.
func (r *PlanRepository) Upsert(plan *models.StudyPlan) error {
	plan.ID = 1
	_, err := DB.Exec(`
		INSERT INTO study_plan (id, vocabulary_name, vocabulary_size, word_list_size, start_date, finished)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			vocabulary_name = excluded.vocabulary_name,
			vocabulary_size = excluded.vocabulary_size,
			word_list_size = excluded.word_list_size,
			start_date = excluded.start_date,
			finished = excluded.finished
	`, plan.VocabularyName, plan.VocabularySize, plan.WordListSize, plan.StartDate, plan.Finished)
	if err != nil {
		return fmt.Errorf("failed to upsert study plan: %v", err)
	}
	planNotifier.Notify()
	return nil
}

// MarkFinished flags the plan once the vocabulary has been exhausted
func (r *PlanRepository) MarkFinished() error {
	_, err := DB.Exec("UPDATE study_plan SET finished = true WHERE id = 1")
	if err != nil {
		return fmt.Errorf("failed to mark study plan finished: %v", err)
	}
	planNotifier.Notify()
	return nil
}

// Delete removes the study plan
func (r *PlanRepository) Delete() error {
	_, err := DB.Exec("DELETE FROM study_plan")
	if err != nil {
		return fmt.Errorf("failed to delete study plan: %v", err)
	}
	planNotifier.Notify()
	return nil
}

// GetStartDate returns the plan's start date, or an empty string when no plan exists
func (r *PlanRepository) GetStartDate() (string, error) {
	var startDate string
	err := DB.Get(&startDate, "SELECT start_date FROM study_plan WHERE id = 1")
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get start date: %v", err)
	}
	return startDate, nil
}

// ResetStudy removes the plan together with all progress history. Wrong rows
// cascade with their lessons. Intended for the new-plan flow, which replaces
// the enrollment wholesale.
func ResetStudy() error {
	if err := NewPlanRepository().Delete(); err != nil {
		return err
	}
	return NewProgressRepository().DeleteAll()
}
