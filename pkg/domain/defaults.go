package domain

// DefaultCollection is the sentinel collection used when a load request names
// no registered collection.
const DefaultCollection = "default"

// DefaultSceneName is the name given to the scene created by the bootstrap
// path.
const DefaultSceneName = "Scene"

// Source kinds created by the bootstrap path.
const (
	KindAudioOutputCapture = "audio_output_capture"
	KindAudioInputCapture  = "audio_input_capture"
)

// Fixed audio channel assignments for the bootstrap sources.
const (
	ChannelDesktopAudio = 1
	ChannelMicAux       = 3
)

// Names of the bootstrap audio sources.
const (
	DefaultDesktopAudioName = "Desktop Audio"
	DefaultMicName          = "Mic/Aux"
)

// Default transition applied to a fresh collection.
const (
	DefaultTransitionKind       = "cut"
	DefaultTransitionDurationMs = 300
)
