package session

import "github.com/example/landing/pkg/models"

// ErrorCode classifies a failure surfaced through the session state
type ErrorCode string

const (
	// ErrorCodeNone means no error is present
	ErrorCodeNone ErrorCode = ""
	// ErrorCodeIO is a storage read or write failure
	ErrorCodeIO ErrorCode = "IO"
	// ErrorCodeUnknown is an unexpected failure
	ErrorCodeUnknown ErrorCode = "UNKNOWN"
)

// StateKind discriminates the session state variants
type StateKind int

const (
	// StateNone means no study plan exists
	StateNone StateKind = iota
	// StateLearning means a lesson is active in some phase
	StateLearning
	// StatePlanFinished means the plan's vocabulary has been exhausted
	StatePlanFinished
	// StateError means a failure must be shown instead of a lesson
	StateError
)

// SessionState is the single authoritative answer to "what should the study
// screen show right now".
type SessionState struct {
	Kind  StateKind
	Phase models.ProgressState // set when Kind is StateLearning
	Code  ErrorCode            // set when Kind is StateError
}

// None returns the no-plan state
func None() SessionState {
	return SessionState{Kind: StateNone}
}

// Learning returns the active-lesson state for a phase
func Learning(phase models.ProgressState) SessionState {
	return SessionState{Kind: StateLearning, Phase: phase}
}

// PlanFinished returns the exhausted-plan state
func PlanFinished() SessionState {
	return SessionState{Kind: StatePlanFinished}
}

// Errored returns the failure state for a code
func Errored(code ErrorCode) SessionState {
	return SessionState{Kind: StateError, Code: code}
}
