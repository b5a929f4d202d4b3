package state

import (
	"sync"

	"github.com/castkit/scenevault/pkg/domain"
)

// SceneState implements ports.SceneService in memory.
// Safe for concurrent use.
type SceneState struct {
	mu       sync.RWMutex
	scenes   []domain.SceneRecord
	items    map[string][]domain.SceneItemRecord
	activeID string
}

// NewSceneState creates an empty scene service.
func NewSceneState() *SceneState {
	return &SceneState{
		items: make(map[string][]domain.SceneItemRecord),
	}
}

// Scenes returns the live scenes in listing order.
func (s *SceneState) Scenes() []domain.SceneRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SceneRecord, len(s.scenes))
	copy(out, s.scenes)
	return out
}

// Count returns the number of live scenes.
func (s *SceneState) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scenes)
}

// ActiveSceneID returns the ID of the active scene, or "".
func (s *SceneState) ActiveSceneID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// CreateScene appends a new scene and returns its record.
func (s *SceneState) CreateScene(name string) domain.SceneRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := domain.SceneRecord{ID: newID("scene"), Name: name}
	s.scenes = append(s.scenes, rec)
	return rec
}

// SetActiveScene marks the scene with the given ID active. Unknown IDs are
// ignored.
func (s *SceneState) SetActiveScene(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.scenes {
		if s.scenes[i].ID == id {
			s.activeID = id
			s.markActiveLocked()
			return
		}
	}
}

// ReplaceScenes discards all live scenes and their items and installs the
// given ones.
func (s *SceneState) ReplaceScenes(scenes []domain.SceneRecord, activeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenes = make([]domain.SceneRecord, len(scenes))
	copy(s.scenes, scenes)
	s.items = make(map[string][]domain.SceneItemRecord)
	s.activeID = activeID
	s.markActiveLocked()
}

// markActiveLocked keeps the per-record Active flag in sync with activeID.
func (s *SceneState) markActiveLocked() {
	for i := range s.scenes {
		s.scenes[i].Active = s.scenes[i].ID == s.activeID
	}
}

// Items returns the items of one scene in z-order.
func (s *SceneState) Items(sceneID string) []domain.SceneItemRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.items[sceneID]
	out := make([]domain.SceneItemRecord, len(src))
	copy(out, src)
	return out
}

// ReplaceItems discards the items of one scene and installs the given ones.
func (s *SceneState) ReplaceItems(sceneID string, items []domain.SceneItemRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]domain.SceneItemRecord, len(items))
	copy(cp, items)
	s.items[sceneID] = cp
}

// AddItem places a source into a scene and returns the item record.
func (s *SceneState) AddItem(sceneID, sourceID string) domain.SceneItemRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := domain.SceneItemRecord{
		ID:       newID("item"),
		SourceID: sourceID,
		ScaleX:   1,
		ScaleY:   1,
		Visible:  true,
	}
	s.items[sceneID] = append(s.items[sceneID], rec)
	return rec
}
