package persistence

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/castkit/scenevault/internal/logging"
	"github.com/castkit/scenevault/internal/naming"
	"github.com/castkit/scenevault/pkg/collection"
	"github.com/castkit/scenevault/pkg/domain"
	"github.com/castkit/scenevault/pkg/nodes"
	"github.com/castkit/scenevault/pkg/ports"
	"github.com/castkit/scenevault/pkg/schema"
)

// DefaultDebounceWindow is the save quiescence window applied unless
// WithDebounceWindow overrides it.
const DefaultDebounceWindow = 5 * time.Second

// Services bundles the live collaborators the orchestrator snapshots.
type Services struct {
	Scenes     ports.SceneService
	Sources    ports.SourceService
	Transition ports.TransitionService
	Hotkeys    ports.HotkeyService
}

// Manager orchestrates collection persistence over a blob store.
type Manager struct {
	store      ports.BlobStore
	scenes     ports.SceneService
	sources    ports.SourceService
	transition ports.TransitionService
	hotkeys    ports.HotkeyService

	registry  *collection.Registry
	nodeTypes *schema.Registry
	suggester ports.NameSuggester
	presenter ports.WindowPresenter

	logger      *slog.Logger
	debounce    *debouncer
	defaultName string
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithDebounceWindow overrides the save quiescence window.
func WithDebounceWindow(window time.Duration) Option {
	return func(m *Manager) {
		m.debounce = newDebouncer(window)
	}
}

// WithDefaultCollection overrides the sentinel collection name.
func WithDefaultCollection(name string) Option {
	return func(m *Manager) {
		m.defaultName = name
	}
}

// WithNameSuggester injects a custom naming collaborator.
func WithNameSuggester(s ports.NameSuggester) Option {
	return func(m *Manager) {
		m.suggester = s
	}
}

// WithWindowPresenter injects the UI surface used by PromptRename.
func WithWindowPresenter(p ports.WindowPresenter) Option {
	return func(m *Manager) {
		m.presenter = p
	}
}

// NewManager creates a persistence orchestrator over the given store and live
// services.
func NewManager(store ports.BlobStore, svcs Services, opts ...Option) *Manager {
	m := &Manager{
		store:       store,
		scenes:      svcs.Scenes,
		sources:     svcs.Sources,
		transition:  svcs.Transition,
		hotkeys:     svcs.Hotkeys,
		registry:    collection.NewRegistry(),
		suggester:   naming.NewSuggester(),
		logger:      logging.NewNop(),
		debounce:    newDebouncer(DefaultDebounceWindow),
		defaultName: domain.DefaultCollection,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.nodeTypes = nodes.NewRegistry(m.scenes, m.sources, m.transition, m.hotkeys)
	return m
}

// Init populates the collection registry from the documents already present
// in the store.
func (m *Manager) Init(ctx context.Context) error {
	names, err := m.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	for _, name := range names {
		m.registry.Register(name)
	}
	return nil
}

// IsValidName reports whether name is a legal collection name: non-empty, no
// path separators, no dot.
func IsValidName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\.`)
}

// IsValidName reports whether name is a legal collection name.
func (m *Manager) IsValidName(name string) bool {
	return IsValidName(name)
}

// List returns the known collection names in insertion order.
func (m *Manager) List() []string {
	return m.registry.List()
}

// Active returns the active collection name, or "" before the first load.
func (m *Manager) Active() string {
	return m.registry.Active()
}

// Save schedules a debounced write of the live state to the active
// collection. Repeated calls within the quiescence window collapse into one
// write carrying the state present at expiry; failures are logged, since the
// write happens after the caller has moved on.
func (m *Manager) Save() {
	m.debounce.Call(func() {
		if err := m.saveNow(context.Background()); err != nil {
			m.logger.Error("debounced save failed", "error", err)
		}
	})
}

// Flush cancels any pending debounced save and writes the live state
// immediately.
func (m *Manager) Flush(ctx context.Context) error {
	m.debounce.Cancel()
	return m.saveNow(ctx)
}

// Close writes any pending debounced save and releases the timer.
func (m *Manager) Close(ctx context.Context) error {
	if m.debounce.Cancel() {
		return m.saveNow(ctx)
	}
	return nil
}

func (m *Manager) saveNow(ctx context.Context) error {
	root := nodes.NewRoot(m.scenes, m.sources, m.transition, m.hotkeys)
	if err := root.Save(ctx); err != nil {
		return fmt.Errorf("snapshot live state: %w", err)
	}
	data, err := schema.Stringify(root)
	if err != nil {
		return err
	}

	name := m.registry.Active()
	if name == "" {
		name = m.defaultName
	}
	if err := m.store.Write(ctx, name, data); err != nil {
		return fmt.Errorf("write collection %q: %w", name, err)
	}
	m.registry.Register(name)

	m.logger.Debug("collection saved", "collection", name, "bytes", len(data))
	return nil
}

// Load restores the named collection into live state. An empty name resolves
// to the active collection; an unregistered name falls back to the default
// sentinel. A missing document is created as an empty placeholder, and an
// empty document triggers the bootstrap path followed by an immediate save.
func (m *Manager) Load(ctx context.Context, name string) error {
	name = m.resolveName(name)

	exists, err := m.store.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("check collection %q: %w", name, err)
	}
	if !exists {
		if err := m.store.Write(ctx, name, nil); err != nil {
			return fmt.Errorf("create placeholder %q: %w", name, err)
		}
		m.registry.Register(name)
	}

	data, err := m.store.Read(ctx, name)
	if err != nil {
		return fmt.Errorf("read collection %q: %w", name, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		m.registry.Register(name)
		m.registry.SetActive(name)
		if err := m.bootstrap(); err != nil {
			return err
		}
		return m.saveNow(ctx)
	}

	root, err := schema.Parse(data, m.nodeTypes)
	if err != nil {
		return fmt.Errorf("collection %q: %w", name, err)
	}
	if err := root.Load(ctx); err != nil {
		return fmt.Errorf("collection %q: %w", name, err)
	}

	// A document that parsed but yielded no usable scene still gets the
	// known-good defaults.
	if m.scenes.Count() == 0 {
		m.logger.Warn("loaded collection has no scenes", "collection", name)
		if err := m.bootstrap(); err != nil {
			return err
		}
	}

	m.registry.Register(name)
	m.registry.SetActive(name)
	m.logger.Info("collection loaded", "collection", name)
	return nil
}

func (m *Manager) resolveName(name string) string {
	if name == "" {
		name = m.registry.Active()
	}
	if name == "" || !m.registry.Has(name) {
		return m.defaultName
	}
	return name
}

// bootstrap drives live state into the minimal known-good shape: one active
// scene and the two default audio capture sources.
func (m *Manager) bootstrap() error {
	sc := m.scenes.CreateScene(domain.DefaultSceneName)
	m.scenes.SetActiveScene(sc.ID)

	if _, err := m.sources.CreateSource(domain.DefaultDesktopAudioName,
		domain.KindAudioOutputCapture, nil, domain.ChannelDesktopAudio); err != nil {
		return fmt.Errorf("bootstrap desktop audio: %w", err)
	}
	if _, err := m.sources.CreateSource(domain.DefaultMicName,
		domain.KindAudioInputCapture, nil, domain.ChannelMicAux); err != nil {
		return fmt.Errorf("bootstrap mic: %w", err)
	}

	m.logger.Info("bootstrapped default configuration", "scene", domain.DefaultSceneName)
	return nil
}

// Create writes an empty placeholder document for name and registers it.
// Returns false if the name is illegal or the placeholder cannot be written.
// Re-creating an existing collection overwrites its document.
func (m *Manager) Create(ctx context.Context, name string) bool {
	if !IsValidName(name) {
		return false
	}
	if err := m.store.Write(ctx, name, nil); err != nil {
		m.logger.Error("create collection failed", "collection", name, "error", err)
		return false
	}
	m.registry.Register(name)
	return true
}

// Duplicate flushes the active collection to disk, then copies from's
// document bytes verbatim to a new collection named to.
func (m *Manager) Duplicate(ctx context.Context, from, to string) error {
	if !IsValidName(to) {
		return fmt.Errorf("duplicate to %q: %w", to, domain.ErrInvalidName)
	}

	// The source may be the active collection; capture its latest state first.
	if err := m.Flush(ctx); err != nil {
		return err
	}

	data, err := m.store.Read(ctx, from)
	if err != nil {
		return fmt.Errorf("read collection %q: %w", from, err)
	}
	if err := m.store.Write(ctx, to, data); err != nil {
		return fmt.Errorf("write collection %q: %w", to, err)
	}
	m.registry.Register(to)
	return nil
}

// Rename moves the active collection's document to a new name and updates the
// registry and active pointer. The new document is written before anything is
// torn down, so a failure partway never leaves the registry pointing at a
// missing document; at worst the old document survives as an orphan.
func (m *Manager) Rename(ctx context.Context, newName string) error {
	if !IsValidName(newName) {
		return fmt.Errorf("rename to %q: %w", newName, domain.ErrInvalidName)
	}
	old := m.registry.Active()
	if old == "" {
		return fmt.Errorf("rename: no active collection: %w", domain.ErrCollectionNotFound)
	}

	data, err := m.store.Read(ctx, old)
	if err != nil {
		return fmt.Errorf("read collection %q: %w", old, err)
	}
	if err := m.store.Write(ctx, newName, data); err != nil {
		return fmt.Errorf("write collection %q: %w", newName, err)
	}

	m.registry.Rename(old, newName)

	if err := m.store.Delete(ctx, old); err != nil {
		m.logger.Warn("renamed collection left an orphan document",
			"collection", old, "error", err)
	}
	return nil
}

// Remove deletes the named collection's document and unregisters it. Removing
// the active collection clears the active pointer; the next Load falls back
// to the default sentinel.
func (m *Manager) Remove(ctx context.Context, name string) error {
	if err := m.store.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete collection %q: %w", name, err)
	}
	m.registry.Unregister(name)
	return nil
}

// SuggestName produces a collection name not present in the registry.
func (m *Manager) SuggestName(base string) string {
	return m.suggester.Suggest(base, m.registry.Has)
}

// PromptRename asks the UI collaborator to present a name-entry surface.
// Fire-and-forget; a nil presenter is a no-op.
func (m *Manager) PromptRename() {
	if m.presenter != nil {
		m.presenter.ShowNameEntry("Rename collection")
	}
}
