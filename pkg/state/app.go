package state

// App aggregates the live services one compositor process owns.
type App struct {
	Scenes     *SceneState
	Sources    *SourceState
	Transition *TransitionState
	Hotkeys    *HotkeyState
}

// NewApp creates an empty live configuration.
func NewApp() *App {
	return &App{
		Scenes:     NewSceneState(),
		Sources:    NewSourceState(),
		Transition: NewTransitionState(),
		Hotkeys:    NewHotkeyState(),
	}
}
