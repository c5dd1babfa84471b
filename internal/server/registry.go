package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/worldatlas/globequiz/internal/game"
	"github.com/worldatlas/globequiz/internal/geo"
)

// Session is one player's live game: a controller plus its SSE presenter.
type Session struct {
	ID         string
	Controller *game.Controller

	lastSeen time.Time
}

// Registry owns the live sessions. Each session gets a fresh controller
// seeded with the persisted stats; idle sessions are evicted by Sweep so
// their tick goroutines do not pile up.
type Registry struct {
	logger   *slog.Logger
	broker   *Broker
	settings SettingsStore
	ttl      time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(logger *slog.Logger, broker *Broker, settings SettingsStore, ttl time.Duration) *Registry {
	return &Registry{
		logger:   logger,
		broker:   broker,
		settings: settings,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create builds a new session around the persisted player stats.
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	xp, level, err := r.settings.LoadStats(ctx)
	if err != nil {
		return nil, err
	}
	stats := game.NewStats()
	stats.XP, stats.Level = xp, level
	if stats.Level < 1 {
		stats.Level = 1
	}

	id := uuid.NewString()
	s := &Session{
		ID:         id,
		Controller: game.NewController(r.logger, newSSEPresenter(r.broker, id), r.settings, stats),
		lastSeen:   time.Now(),
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	r.logger.Info("session created", "session", id, "xp", xp, "level", level)
	return s, nil
}

// Get returns a session and refreshes its idle deadline.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.lastSeen = time.Now()
	return s, nil
}

// Sweep evicts sessions idle for longer than the TTL.
func (r *Registry) Sweep() {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			s.Controller.Close()
			delete(r.sessions, id)
			r.logger.Info("session expired", "session", id)
		}
	}
}

// RunJanitor sweeps periodically until ctx is done.
func (r *Registry) RunJanitor(ctx context.Context) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Sweep()
		}
	}
}

// Close stops every live session.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		s.Controller.Close()
		delete(r.sessions, id)
	}
}

// PoolFor resolves a region selection to the playable pool.
func PoolFor(index *geo.Index, selection string) []geo.CountryRecord {
	if selection == "World" || selection == "" {
		return index.All()
	}
	return index.ByRegion(geo.Region(selection))
}
