package stepcounter

import "github.com/stepsquad/stepsquad/internal/models"

// sessionState is the per instance step state. It lives as long as the
// engine that owns it; only loadedSteps and currentTotal survive a restart,
// through the durable store.
type sessionState struct {
	// watchBaseline is the first raw reading of the current subscription
	watchBaseline *int
	activity      *models.Activity
	status        Status
	loadedSteps   int
	currentTotal  int
	// loaded gates writes to the durable store
	loaded bool
}

// reconcile folds a raw sensor reading into the state. It reports whether
// currentTotal changed and whether the reading implied a sensor reset.
func (s *sessionState) reconcile(raw int) (changed, reset bool) {
	if s.watchBaseline == nil {
		s.watchBaseline = &raw
		return false, false
	}

	delta := raw - *s.watchBaseline
	total := s.loadedSteps + delta

	if delta < 0 {
		reset = true
		total = max(s.loadedSteps, total)
	}

	if total == s.currentTotal {
		return false, reset
	}

	s.currentTotal = total

	return true, reset
}

func (s *sessionState) goal(fallback int) int {
	if s.activity != nil && s.activity.Goal > 0 {
		return s.activity.Goal
	}

	return fallback
}

func (s *sessionState) snapshot(fallbackGoal int) Snapshot {
	goal := s.goal(fallbackGoal)

	return Snapshot{
		SensorStatus:     s.status,
		CurrentStepCount: s.currentTotal,
		StepGoal:         goal,
		GoalReached:      goal > 0 && s.currentTotal >= goal,
	}
}
