package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Registry holds independent player stores keyed by generated ids.
// Update, With and ForEach run under the registry lock. A store returned by
// Create or Get is not guarded once it leaves the registry; concurrent callers
// should go through With instead.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store

	starting Patch
	logger   *slog.Logger
}

type RegistryOpt func(*Registry)

// WithStartingPatch sets the patch applied to every player the registry creates,
// before any per-player overrides.
func WithStartingPatch(pt Patch) RegistryOpt {
	return func(r *Registry) {
		r.starting = pt
	}
}

// WithRegistryLogger sets the logger handed to the registry and its stores.
func WithRegistryLogger(l *slog.Logger) RegistryOpt {
	return func(r *Registry) {
		r.logger = l
	}
}

func NewRegistry(opts ...RegistryOpt) *Registry {
	r := &Registry{
		stores: make(map[string]*Store),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Create builds a default player, applies the starting patch and then
// overrides, and registers it under a new id.
func (r *Registry) Create(overrides Patch) (string, *Store, error) {
	s := NewStore(WithLogger(r.logger))
	if err := s.Update(r.starting); err != nil {
		return "", nil, fmt.Errorf("applying starting values: %w", err)
	}
	if err := s.Update(overrides); err != nil {
		return "", nil, fmt.Errorf("applying overrides: %w", err)
	}

	id := uuid.New().String()

	r.mu.Lock()
	r.stores[id] = s
	r.mu.Unlock()

	r.logger.Info("player created", "id", id, "name", s.Player().Name, "class", s.Player().Class)
	return id, s, nil
}

// Get returns the store for id, or nil if there is none. The store is returned
// unlocked; use With when other goroutines may touch the same player.
func (r *Registry) Get(id string) *Store {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stores[id]
}

// Remove drops the store for id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[id]; !exists {
		return ErrPlayerNotFound
	}

	delete(r.stores, id)
	return nil
}

// Update applies pt to the player registered under id.
func (r *Registry) Update(id string, pt Patch) error {
	return r.With(id, func(s *Store) error {
		return s.Update(pt)
	})
}

// With runs fn against the store for id while holding the registry lock.
func (r *Registry) With(id string, fn func(*Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.stores[id]
	if !exists {
		return ErrPlayerNotFound
	}

	return fn(s)
}

// ForEach calls fn for each registered store while holding the lock.
func (r *Registry) ForEach(fn func(string, *Store)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.stores {
		fn(id, s)
	}
}

// Len returns the number of registered players.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.stores)
}

// Start keeps the registry alive for the lifetime of ctx.
func (r *Registry) Start(ctx context.Context) error {
	r.logger.InfoContext(ctx, "player registry ready", "players", r.Len())

	<-ctx.Done()

	r.logger.InfoContext(ctx, "player registry stopping", "players", r.Len())
	return nil
}
