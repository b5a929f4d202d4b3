package state

import (
	"sync"

	"github.com/castkit/scenevault/pkg/domain"
)

// TransitionState implements ports.TransitionService in memory.
type TransitionState struct {
	mu         sync.RWMutex
	transition domain.TransitionRecord
}

// NewTransitionState creates a transition service holding the default cut
// transition.
func NewTransitionState() *TransitionState {
	return &TransitionState{
		transition: domain.TransitionRecord{
			Kind:       domain.DefaultTransitionKind,
			DurationMs: domain.DefaultTransitionDurationMs,
		},
	}
}

// Transition returns the transition currently in effect.
func (s *TransitionState) Transition() domain.TransitionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transition
}

// SetTransition replaces the transition in effect.
func (s *TransitionState) SetTransition(t domain.TransitionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transition = t
}
