package prefs

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"smartstock/models"
	"smartstock/store"
)

// Syncer mirrors the store's preferences into a Repository. Saves happen on
// a background goroutine so store transitions never wait on storage.
type Syncer struct {
	repo Repository
	key  string
	log  *zap.Logger

	mu      sync.Mutex
	last    models.Preferences
	pending *models.Preferences
	wake    chan struct{}
}

// NewSyncer returns a Syncer saving under key. An empty key uses DefaultKey.
func NewSyncer(repo Repository, key string, log *zap.Logger) *Syncer {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Syncer{repo: repo, key: key, log: log, wake: make(chan struct{}, 1)}
}

// Restore applies stored preferences to s. A missing entry is not an error.
func (y *Syncer) Restore(ctx context.Context, s *store.Store) error {
	p, err := y.repo.Load(ctx, y.key)
	if errors.Is(err, ErrNotFound) {
		y.setLast(s.Preferences())
		return nil
	}
	if err != nil {
		return err
	}
	s.RestorePreferences(p)
	y.setLast(s.Preferences())
	y.log.Info("preferences restored", zap.String("theme", string(p.Theme)), zap.String("activeTab", p.ActiveTab))
	return nil
}

// Run saves preference changes until ctx is done. The latest unsaved change
// is flushed before returning.
func (y *Syncer) Run(ctx context.Context, s *store.Store) {
	unsubscribe := s.Subscribe(y.observe)
	defer unsubscribe()

	for {
		select {
		case <-y.wake:
			y.flush(ctx)
		case <-ctx.Done():
			y.flush(context.WithoutCancel(ctx))
			return
		}
	}
}

func (y *Syncer) observe(snap store.Snapshot) {
	p := snap.Preferences()
	y.mu.Lock()
	if p == y.last {
		y.mu.Unlock()
		return
	}
	y.last = p
	y.pending = &p
	y.mu.Unlock()

	select {
	case y.wake <- struct{}{}:
	default:
	}
}

func (y *Syncer) flush(ctx context.Context) {
	y.mu.Lock()
	p := y.pending
	y.pending = nil
	y.mu.Unlock()
	if p == nil {
		return
	}
	if err := y.repo.Save(ctx, y.key, *p); err != nil {
		y.log.Warn("failed to save preferences", zap.String("key", y.key), zap.Error(err))
		return
	}
	y.log.Debug("preferences saved", zap.String("theme", string(p.Theme)), zap.String("activeTab", p.ActiveTab))
}

func (y *Syncer) setLast(p models.Preferences) {
	y.mu.Lock()
	y.last = p
	y.mu.Unlock()
}
