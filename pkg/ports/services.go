package ports

import "github.com/castkit/scenevault/pkg/domain"

// SceneService owns the live scenes, their listing order, the active scene
// and the items placed inside each scene.
type SceneService interface {
	// Scenes returns the live scenes in listing order.
	Scenes() []domain.SceneRecord

	// Count returns the number of live scenes.
	Count() int

	// ActiveSceneID returns the ID of the active scene, or "" if none.
	ActiveSceneID() string

	// CreateScene appends a new scene and returns its record.
	CreateScene(name string) domain.SceneRecord

	// SetActiveScene marks the scene with the given ID active.
	SetActiveScene(id string)

	// ReplaceScenes discards all live scenes (and their items) and installs
	// the given ones. activeID selects the active scene.
	ReplaceScenes(scenes []domain.SceneRecord, activeID string)

	// Items returns the items of one scene in z-order.
	Items(sceneID string) []domain.SceneItemRecord

	// ReplaceItems discards the items of one scene and installs the given ones.
	ReplaceItems(sceneID string, items []domain.SceneItemRecord)
}

// SourceService owns the live sources.
type SourceService interface {
	// Sources returns the live sources in creation order.
	Sources() []domain.SourceRecord

	// CreateSource registers a new source of the given kind. settings is a
	// kind-specific options map; channel fixes an audio channel (0 = none).
	CreateSource(name, kind string, settings map[string]any, channel int) (domain.SourceRecord, error)

	// ReplaceSources discards all live sources and installs the given ones.
	ReplaceSources(sources []domain.SourceRecord)
}

// TransitionService owns the live scene transition.
type TransitionService interface {
	Transition() domain.TransitionRecord
	SetTransition(t domain.TransitionRecord)
}

// HotkeyService owns the live hotkey bindings.
type HotkeyService interface {
	Bindings() []domain.HotkeyRecord
	ReplaceBindings(bindings []domain.HotkeyRecord)
}

// NameSuggester produces a name that is not already taken.
type NameSuggester interface {
	// Suggest returns base itself if free, otherwise a derived unused name.
	Suggest(base string, taken func(string) bool) string
}

// WindowPresenter presents a name-entry surface to the user. Fire-and-forget;
// persistence correctness never depends on it.
type WindowPresenter interface {
	ShowNameEntry(title string)
}
