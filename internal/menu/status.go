package menu

import "fmt"

// Status is the lifecycle state of a menu job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAnalyzing Status = "analyzing"
	StatusCompleted Status = "completed"
	StatusApproved  Status = "approved"
)

// allowedTransitions is the explicit state machine:
// pending → analyzing → completed → approved, with a recovery edge back to
// pending on extraction failure and re-analysis from completed or approved.
// Approving an already approved job re-runs the processor.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusAnalyzing},
	StatusAnalyzing: {StatusCompleted, StatusPending},
	StatusCompleted: {StatusAnalyzing, StatusApproved},
	StatusApproved:  {StatusAnalyzing, StatusApproved},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAnalyzing, StatusCompleted, StatusApproved:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, t := range allowedTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Transition returns next if the edge is valid, otherwise an error.
// Status is never overwritten except through this function.
func (s Status) Transition(next Status) (Status, error) {
	if !s.CanTransition(next) {
		return s, fmt.Errorf("invalid status transition from %s to %s", s, next)
	}
	return next, nil
}
