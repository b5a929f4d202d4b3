package domain

// SceneRecord is one scene in listing order.
type SceneRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// SceneItemRecord places a source inside a scene.
type SceneItemRecord struct {
	ID       string  `json:"id"`
	SourceID string  `json:"sourceId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	Visible  bool    `json:"visible"`
}

// SourceRecord is one input source. Channel 0 means no fixed audio channel.
type SourceRecord struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	Channel  int            `json:"channel,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
	Muted    bool           `json:"muted"`
	Volume   float64        `json:"volume"`
}

// TransitionRecord is the scene transition currently in effect.
type TransitionRecord struct {
	Kind       string         `json:"kind"`
	DurationMs int            `json:"durationMs"`
	Settings   map[string]any `json:"settings,omitempty"`
}

// HotkeyRecord binds a key combination to a named action.
type HotkeyRecord struct {
	Action string   `json:"action"`
	Keys   []string `json:"keys"`
}
