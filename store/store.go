// Package store holds the dashboard state: every entity collection the
// dashboard shows plus the UI/session fields, mutated only through the
// exported operations.
//
// Each operation is a single atomic transition. Listeners registered with
// Subscribe see the state after a transition completes, never in between.
// RefreshData is the only operation that suspends; the lock is released while
// the refresher runs so the remaining operations stay callable.
package store

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"smartstock/models"
	"smartstock/seed"
)

const (
	defaultActiveTab      = "overview"
	defaultRefreshTimeout = 30 * time.Second
)

// Listener receives a snapshot after every state transition. The snapshot is
// shared between listeners and must be treated as read-only. Deliveries are
// serialized and never go backwards: a snapshot older than one already
// delivered is dropped. A listener must not mutate the store.
type Listener func(Snapshot)

// Observer is notified of domain-level changes, typically to feed metrics.
type Observer interface {
	RecommendationsResolved(outcome string, n int)
	RecommendationsSynthesized(n int)
	EventAdded()
	PendingChanged(pending int)
	RefreshFinished(elapsed time.Duration, err error)
}

// SystemThemeResolver reports the host's preferred mode, ThemeLight or ThemeDark.
type SystemThemeResolver func() models.Theme

// Option configures a Store.
type Option func(*Store)

// WithRefresher sets the source RefreshData pulls from.
func WithRefresher(r Refresher) Option {
	return func(s *Store) { s.refresher = r }
}

// WithRefreshTimeout bounds a single refresh. Non-positive values keep the default.
func WithRefreshTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.refreshTimeout = d
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSystemTheme sets how the "system" theme resolves to light or dark.
func WithSystemTheme(resolve SystemThemeResolver) Option {
	return func(s *Store) { s.systemTheme = resolve }
}

// WithLogger sets the logger used for operation tracing.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

// Store is the single source of truth for the dashboard.
type Store struct {
	mu        sync.Mutex
	st        state
	listeners map[int]Listener
	nextID    int
	seq       uint64

	notifyMu  sync.Mutex
	delivered uint64

	refresher      Refresher
	refreshTimeout time.Duration
	refreshGroup   singleflight.Group
	now            func() time.Time
	systemTheme    SystemThemeResolver
	log            *zap.Logger
	observer       Observer
}

type state struct {
	skus            []models.SKU
	recommendations []models.Recommendation
	events          []models.Event
	storeMetrics    models.StoreMetrics
	weatherImpact   models.WeatherImpact
	userProfile     models.UserProfile
	bundles         []models.Bundle
	kpiTiles        []models.KPITile
	demandBubbles   []models.DemandBubble

	activeTab     string
	selected      []string
	isLoading     bool
	searchQuery   string
	theme         models.Theme
	resolvedTheme models.Theme
	cursor        int
	briefing      string
}

// New builds a store seeded from d. The dataset is copied; later changes to d
// do not affect the store.
func New(d *seed.Dataset, opts ...Option) *Store {
	s := &Store{
		listeners:      make(map[int]Listener),
		refreshTimeout: defaultRefreshTimeout,
		now:            time.Now,
		systemTheme:    func() models.Theme { return models.ThemeLight },
		log:            zap.NewNop(),
		observer:       nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.st = state{
		skus:            cloneAll(d.SKUs),
		recommendations: cloneAll(d.Recommendations),
		events:          cloneAll(d.Events),
		storeMetrics:    d.StoreMetrics,
		weatherImpact:   d.WeatherImpact.Clone(),
		userProfile:     d.UserProfile.Clone(),
		bundles:         cloneAll(d.Bundles),
		kpiTiles:        cloneAll(d.KPITiles),
		demandBubbles:   cloneSlice(d.DemandBubbles),
		activeTab:       defaultActiveTab,
		theme:           models.ThemeLight,
		resolvedTheme:   models.ThemeLight,
	}
	s.observer.PendingChanged(s.st.storeMetrics.PendingRecommendations)
	return s
}

// Subscribe registers fn for every subsequent transition and returns a
// function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.snapshot()
}

// update applies fn as one transition. When fn reports a change, the observer
// and listeners are called with the resulting state after the lock is
// released, in transition order.
func (s *Store) update(fn func(st *state) bool) {
	s.mu.Lock()
	if !fn(&s.st) {
		s.mu.Unlock()
		return
	}
	s.seq++
	seq := s.seq
	pending := s.st.storeMetrics.PendingRecommendations
	var (
		snap      Snapshot
		listeners []Listener
	)
	if len(s.listeners) > 0 {
		snap = s.st.snapshot()
		listeners = make([]Listener, 0, len(s.listeners))
		for _, l := range s.listeners {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if seq < s.delivered {
		return
	}
	s.delivered = seq
	s.observer.PendingChanged(pending)
	for _, l := range listeners {
		l(snap)
	}
}

type nopObserver struct{}

func (nopObserver) RecommendationsResolved(string, int)  {}
func (nopObserver) RecommendationsSynthesized(int)       {}
func (nopObserver) EventAdded()                          {}
func (nopObserver) PendingChanged(int)                   {}
func (nopObserver) RefreshFinished(time.Duration, error) {}

type cloner[T any] interface {
	Clone() T
}

func cloneAll[T cloner[T]](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
