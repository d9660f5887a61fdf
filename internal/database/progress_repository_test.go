package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/landing/pkg/models"
)

func TestProgressRepository_GetLatestReturnsNilWithoutLessons(t *testing.T) {
	setupTestDB(t)

	progress, err := NewProgressRepository().GetLatest()
	require.NoError(t, err)
	assert.Nil(t, progress)
}

func TestProgressRepository_GetLatestPicksHighestID(t *testing.T) {
	setupTestDB(t)

	seedProgress(t, 1, 0, 20, "2026-08-28")
	seedProgress(t, 2, 20, 20, "")

	progress, err := NewProgressRepository().GetLatest()
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, int64(2), progress.ID)
	assert.Equal(t, 20, progress.Start)
	assert.False(t, progress.FinishedDate.Valid)
}

func TestProgressRepository_AdvancePhaseMovesForwardOnly(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	seedProgress(t, 1, 0, 20, "")

	require.NoError(t, repo.AdvancePhase(1))
	progress, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.ProgressStateChoice, progress.ProgressState)

	require.NoError(t, repo.AdvancePhase(1))
	progress, err = repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.ProgressStateSpelling, progress.ProgressState)

	// SPELLING is terminal within a lesson
	require.NoError(t, repo.AdvancePhase(1))
	progress, err = repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.ProgressStateSpelling, progress.ProgressState)
}

func TestProgressRepository_CountersClampAtWordListSize(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	seedProgress(t, 1, 0, 2, "")

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.IncrementLearned(1))
	}
	require.NoError(t, repo.IncrementChosen(1))
	require.NoError(t, repo.IncrementSpelled(1))

	progress, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Learned)
	assert.Equal(t, 1, progress.Chosen)
	assert.Equal(t, 1, progress.Spelled)
}

func TestProgressRepository_MarkFinishedWritesOnce(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	seedProgress(t, 1, 0, 20, "")

	require.NoError(t, repo.MarkFinished(1, "2026-08-29"))
	// A second completion date must not overwrite the first
	require.NoError(t, repo.MarkFinished(1, "2026-08-30"))

	progress, err := repo.GetByID(1)
	require.NoError(t, err)
	require.True(t, progress.FinishedDate.Valid)
	assert.Equal(t, "2026-08-29", progress.FinishedDate.String)
}

func TestProgressRepository_LatestLessonReport(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	seedProgress(t, 1, 0, 1000, "")
	_, err := DB.Exec("UPDATE study_progress SET learned = 500, chosen = 300, spelled = 200 WHERE id = 1")
	require.NoError(t, err)

	report, err := repo.LatestLessonReport(1000)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, report[0], 0.1)
	assert.InDelta(t, 30.0, report[1], 0.1)
	assert.InDelta(t, 20.0, report[2], 0.1)
}

func TestProgressRepository_LatestLessonReportZeroWhenNoProgress(t *testing.T) {
	setupTestDB(t)

	report, err := NewProgressRepository().LatestLessonReport(1000)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{}, report)
}

func TestProgressRepository_TotalReport(t *testing.T) {
	setupTestDB(t)
	repo := NewProgressRepository()

	seedProgress(t, 1, 0, 500, "2026-08-28")
	_, err := DB.Exec("UPDATE study_progress SET spelled = 500 WHERE id = 1")
	require.NoError(t, err)

	report, err := repo.TotalReport(1000)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, report[0], 0.1)
	assert.InDelta(t, 50.0, report[1], 0.1)
}

func TestPercentBoundaries(t *testing.T) {
	// Empty lesson must not divide by zero
	assert.Equal(t, 0.0, percent(0, 0))
	assert.Equal(t, 100.0, percent(20, 20))
	assert.Equal(t, 0.0, percent(0, 20))
	// Clamped even if a counter somehow overshoots
	assert.Equal(t, 100.0, percent(25, 20))
}
