package state

import (
	"sync"

	"github.com/castkit/scenevault/pkg/domain"
)

// HotkeyState implements ports.HotkeyService in memory.
type HotkeyState struct {
	mu       sync.RWMutex
	bindings []domain.HotkeyRecord
}

// NewHotkeyState creates an empty hotkey service.
func NewHotkeyState() *HotkeyState {
	return &HotkeyState{}
}

// Bindings returns the live bindings in registration order.
func (s *HotkeyState) Bindings() []domain.HotkeyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.HotkeyRecord, len(s.bindings))
	copy(out, s.bindings)
	return out
}

// Bind appends a binding.
func (s *HotkeyState) Bind(action string, keys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = append(s.bindings, domain.HotkeyRecord{Action: action, Keys: keys})
}

// ReplaceBindings discards all live bindings and installs the given ones.
func (s *HotkeyState) ReplaceBindings(bindings []domain.HotkeyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bindings = make([]domain.HotkeyRecord, len(bindings))
	copy(s.bindings, bindings)
}
