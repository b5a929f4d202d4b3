package scenevault

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/castkit/scenevault/internal/logging"
	"github.com/castkit/scenevault/pkg/adapters/file"
	"github.com/castkit/scenevault/pkg/persistence"
	"github.com/castkit/scenevault/pkg/persistence/middleware"
	"github.com/castkit/scenevault/pkg/ports"
	"github.com/castkit/scenevault/pkg/state"
	"github.com/prometheus/client_golang/prometheus"
)

// Version is the library version.
const Version = "0.3.0"

// Vault is the high-level entry point for the scenevault library. It wires a
// blob store, the live state services and the persistence orchestrator into a
// single handle.
type Vault struct {
	app     *state.App
	manager *persistence.Manager
	store   ports.BlobStore
	logger  *slog.Logger

	metrics     prometheus.Registerer
	managerOpts []persistence.Option
}

// Option defines a functional option for configuring the Vault.
type Option func(*Vault)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Vault) {
		v.logger = logger
	}
}

// WithStore injects a custom blob store, bypassing the default file store.
func WithStore(store ports.BlobStore) Option {
	return func(v *Vault) {
		v.store = store
	}
}

// WithMetrics instruments the store with Prometheus counters registered on
// reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(v *Vault) {
		v.metrics = reg
	}
}

// WithDebounceWindow overrides the save quiescence window.
func WithDebounceWindow(window time.Duration) Option {
	return func(v *Vault) {
		v.managerOpts = append(v.managerOpts, persistence.WithDebounceWindow(window))
	}
}

// WithDefaultCollection overrides the fallback collection name.
func WithDefaultCollection(name string) Option {
	return func(v *Vault) {
		v.managerOpts = append(v.managerOpts, persistence.WithDefaultCollection(name))
	}
}

// Open initializes a Vault over a data directory. By default collections are
// stored as JSON documents under dataDir; WithStore bypasses the filesystem
// entirely, in which case dataDir may be empty.
func Open(ctx context.Context, dataDir string, opts ...Option) (*Vault, error) {
	v := &Vault{
		app:    state.NewApp(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.store == nil {
		if dataDir == "" {
			return nil, fmt.Errorf("dataDir is required when no custom store is provided")
		}
		absPath, err := filepath.Abs(dataDir)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		v.store = file.New(absPath)
	}

	mws := []middleware.Middleware{middleware.NewLoggingMiddleware(v.logger)}
	if v.metrics != nil {
		mws = append(mws, middleware.NewMetricsMiddleware(v.metrics))
	}
	v.store = middleware.Chain(v.store, mws...)

	v.managerOpts = append(v.managerOpts, persistence.WithLogger(v.logger))
	v.manager = persistence.NewManager(v.store, persistence.Services{
		Scenes:     v.app.Scenes,
		Sources:    v.app.Sources,
		Transition: v.app.Transition,
		Hotkeys:    v.app.Hotkeys,
	}, v.managerOpts...)

	if err := v.manager.Init(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// Manager returns the persistence orchestrator.
func (v *Vault) Manager() *persistence.Manager { return v.manager }

// Scenes returns the live scene service.
func (v *Vault) Scenes() *state.SceneState { return v.app.Scenes }

// Sources returns the live source service.
func (v *Vault) Sources() *state.SourceState { return v.app.Sources }

// Transition returns the live transition service.
func (v *Vault) Transition() *state.TransitionState { return v.app.Transition }

// Hotkeys returns the live hotkey service.
func (v *Vault) Hotkeys() *state.HotkeyState { return v.app.Hotkeys }

// Load restores the named collection into live state. An empty name loads the
// active collection, falling back to the default one.
func (v *Vault) Load(ctx context.Context, name string) error {
	return v.manager.Load(ctx, name)
}

// Save schedules a debounced write of the live state.
func (v *Vault) Save() { v.manager.Save() }

// Flush writes the live state immediately, cancelling any pending save.
func (v *Vault) Flush(ctx context.Context) error { return v.manager.Flush(ctx) }

// Close writes any pending save and releases resources.
func (v *Vault) Close(ctx context.Context) error { return v.manager.Close(ctx) }

// List returns the known collection names.
func (v *Vault) List() []string { return v.manager.List() }

// Active returns the active collection name, or "" before the first load.
func (v *Vault) Active() string { return v.manager.Active() }
