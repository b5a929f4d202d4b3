package state

import (
	"fmt"
	"sync"

	"github.com/castkit/scenevault/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// deviceCaptureSettings is the typed shape of the options map accepted by the
// audio capture kinds.
type deviceCaptureSettings struct {
	DeviceID        string `mapstructure:"device_id"`
	UseDeviceTiming bool   `mapstructure:"use_device_timing"`
}

// SourceState implements ports.SourceService in memory.
// Safe for concurrent use.
type SourceState struct {
	mu      sync.RWMutex
	sources []domain.SourceRecord
}

// NewSourceState creates an empty source service.
func NewSourceState() *SourceState {
	return &SourceState{}
}

// Sources returns the live sources in creation order.
func (s *SourceState) Sources() []domain.SourceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SourceRecord, len(s.sources))
	copy(out, s.sources)
	return out
}

// CreateSource registers a new source. The settings map is validated against
// the kind's typed settings shape before the source is accepted.
func (s *SourceState) CreateSource(name, kind string, settings map[string]any, channel int) (domain.SourceRecord, error) {
	if name == "" {
		return domain.SourceRecord{}, fmt.Errorf("source name cannot be empty")
	}
	if kind == "" {
		return domain.SourceRecord{}, fmt.Errorf("source kind cannot be empty")
	}

	switch kind {
	case domain.KindAudioOutputCapture, domain.KindAudioInputCapture:
		var cfg deviceCaptureSettings
		if err := mapstructure.Decode(settings, &cfg); err != nil {
			return domain.SourceRecord{}, fmt.Errorf("source %q: invalid %s settings: %w", name, kind, err)
		}
	}

	rec := domain.SourceRecord{
		ID:       newID("source"),
		Name:     name,
		Kind:     kind,
		Channel:  channel,
		Settings: settings,
		Volume:   1,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = append(s.sources, rec)
	return rec, nil
}

// ReplaceSources discards all live sources and installs the given ones.
func (s *SourceState) ReplaceSources(sources []domain.SourceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sources = make([]domain.SourceRecord, len(sources))
	copy(s.sources, sources)
}
