// Package session derives the single coherent study-session state from the
// persisted plan, the latest lesson progress and the current calendar date,
// and performs the one legitimate side effect of that derivation: creating
// the next lesson row when a day boundary has been crossed.
package session

import (
	"github.com/example/landing/internal/database"
	"github.com/example/landing/pkg/models"
	"go.uber.org/zap"
)

// inputKey is the full tuple the derivation depends on. Evaluation is skipped
// while the tuple is unchanged, which is what makes the rollover insert fire
// exactly once per genuine input transition.
type inputKey struct {
	hasPlan        bool
	planFinished   bool
	vocabularyName models.VocabularyName
	wordListSize   int
	planErr        bool

	hasProgress  bool
	progressID   int64
	phase        models.ProgressState
	finishedDate string // empty while the lesson is open
	progressErr  bool

	today   string
	errCode ErrorCode
}

// Engine combines the four input streams into SessionState emissions. All
// evaluation runs on one goroutine; the inputs only wake it up, so concurrent
// change notifications can never race two rollover inserts.
type Engine struct {
	planRepo     *database.PlanRepository
	progressRepo *database.ProgressRepository
	prefRepo     *database.PreferenceRepository

	ticker          Ticker
	planChanges     <-chan struct{}
	progressChanges <-chan struct{}
	errSet          chan ErrorCode
	states          chan SessionState
	done            chan struct{}
	stopped         chan struct{}

	logger *zap.SugaredLogger

	// run-loop state, never touched outside the loop goroutine
	plan        *models.StudyPlan
	planErr     bool
	progress    *models.StudyProgress
	progressErr bool
	today       string
	errCode     ErrorCode
	lastKey     inputKey
	hasKey      bool
}

// New creates an engine fed by the given date ticker
func New(ticker Ticker, logger *zap.SugaredLogger) *Engine {
	return &Engine{
		planRepo:        database.NewPlanRepository(),
		progressRepo:    database.NewProgressRepository(),
		prefRepo:        database.NewPreferenceRepository(),
		ticker:          ticker,
		planChanges:     database.PlanChanges(),
		progressChanges: database.ProgressChanges(),
		errSet:          make(chan ErrorCode, 1),
		states:          make(chan SessionState, 1),
		done:            make(chan struct{}),
		stopped:         make(chan struct{}),
		logger:          logger,
	}
}

// States returns the session-state stream. The channel is conflated: a slow
// consumer only sees the most recent state.
func (e *Engine) States() <-chan SessionState {
	return e.states
}

// Start launches the date ticker and the evaluation loop
func (e *Engine) Start() {
	e.ticker.Start()
	go e.run()
}

// Stop halts the ticker and waits for the evaluation loop to exit
func (e *Engine) Stop() {
	e.ticker.Stop()
	close(e.done)
	<-e.stopped
}

// SetThemeMode persists the theme preference on a worker goroutine. A failed
// write is surfaced through the session-state stream as a sticky error, since
// the engine is the only channel back to the study screen.
func (e *Engine) SetThemeMode(mode models.ThemeMode) {
	go func() {
		if err := e.prefRepo.SetTheme(mode); err != nil {
			e.logger.Warnw("failed to persist theme mode", "error", err)
			e.setError(ErrorCodeIO)
		}
	}()
}

func (e *Engine) setError(code ErrorCode) {
	select {
	case e.errSet <- code:
	default:
		select {
		case <-e.errSet:
		default:
		}
		select {
		case e.errSet <- code:
		default:
		}
	}
}

func (e *Engine) run() {
	defer close(e.stopped)

	e.reloadPlan()
	e.reloadProgress()

	for {
		select {
		case <-e.done:
			return
		case <-e.planChanges:
			e.reloadPlan()
		case <-e.progressChanges:
			e.reloadProgress()
		case date := <-e.ticker.Dates():
			e.today = date
		case code := <-e.errSet:
			e.errCode = code
		}
		e.evaluate()
	}
}

func (e *Engine) reloadPlan() {
	plan, err := e.planRepo.Get()
	if err != nil {
		e.logger.Warnw("failed to load study plan", "error", err)
		e.planErr = true
		return
	}
	e.plan = plan
	e.planErr = false
}

func (e *Engine) reloadProgress() {
	progress, err := e.progressRepo.GetLatest()
	if err != nil {
		e.logger.Warnw("failed to load study progress", "error", err)
		e.progressErr = true
		return
	}
	e.progress = progress
	e.progressErr = false
}

func (e *Engine) evaluate() {
	// No derivation before the first date tick: a rollover decision needs to
	// know what day it is.
	if e.today == "" {
		return
	}

	key := e.currentKey()
	if e.hasKey && key == e.lastKey {
		return
	}
	e.lastKey = key
	e.hasKey = true

	e.emit(e.derive())
}

func (e *Engine) currentKey() inputKey {
	key := inputKey{
		planErr:     e.planErr,
		progressErr: e.progressErr,
		today:       e.today,
		errCode:     e.errCode,
	}
	if e.plan != nil {
		key.hasPlan = true
		key.planFinished = e.plan.Finished
		key.vocabularyName = e.plan.VocabularyName
		key.wordListSize = e.plan.WordListSize
	}
	if e.progress != nil {
		key.hasProgress = true
		key.progressID = e.progress.ID
		key.phase = e.progress.ProgressState
		if e.progress.FinishedDate.Valid {
			key.finishedDate = e.progress.FinishedDate.String
		}
	}
	return key
}

// derive recomputes the session state for the current input tuple, inserting
// the next lesson row when the tuple calls for it. A failed insert reports an
// error state and clears the tuple memo so the next input change re-attempts;
// the open-lesson invariant is never assumed before the insert commits.
func (e *Engine) derive() (state SessionState) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorw("session derivation panicked", "panic", r)
			e.hasKey = false
			state = Errored(ErrorCodeUnknown)
		}
	}()

	if e.errCode != ErrorCodeNone {
		return Errored(e.errCode)
	}
	if e.planErr || e.progressErr {
		return Errored(ErrorCodeIO)
	}
	if e.plan == nil {
		return None()
	}
	if e.plan.Finished {
		return PlanFinished()
	}

	if e.progress == nil {
		first := &models.StudyProgress{
			ID:             1,
			VocabularyName: e.plan.VocabularyName,
			Start:          0,
			WordListSize:   e.plan.WordListSize,
			ProgressState:  models.ProgressStateLearn,
		}
		if err := e.progressRepo.Insert(first); err != nil {
			e.logger.Warnw("failed to create first lesson", "error", err)
			e.hasKey = false
			return Errored(ErrorCodeIO)
		}
		e.logger.Infow("created first lesson", "word_list_size", first.WordListSize)
		return Learning(first.ProgressState)
	}

	if !e.progress.FinishedDate.Valid {
		// Lesson still open
		return Learning(e.progress.ProgressState)
	}
	if e.progress.FinishedDate.String == e.today {
		// Finished today; keep showing it until midnight
		return Learning(e.progress.ProgressState)
	}

	next := &models.StudyProgress{
		ID:             e.progress.ID + 1,
		VocabularyName: e.plan.VocabularyName,
		Start:          e.progress.Start + e.plan.WordListSize,
		WordListSize:   e.plan.WordListSize,
		ProgressState:  models.ProgressStateLearn,
	}
	if err := e.progressRepo.Insert(next); err != nil {
		e.logger.Warnw("failed to create next lesson", "lesson", next.ID, "error", err)
		e.hasKey = false
		return Errored(ErrorCodeIO)
	}
	e.logger.Infow("rolled over to next lesson", "lesson", next.ID, "start", next.Start)
	return Learning(next.ProgressState)
}

func (e *Engine) emit(state SessionState) {
	select {
	case e.states <- state:
	default:
		select {
		case <-e.states:
		default:
		}
		select {
		case e.states <- state:
		default:
		}
	}
}
