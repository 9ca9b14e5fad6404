package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"smartstock/models"
)

// ErrNoRefresher is returned by RefreshData when the store has no source.
var ErrNoRefresher = errors.New("store: no refresher configured")

// Refresher pulls fresh data from an external source.
type Refresher interface {
	Refresh(ctx context.Context, snap Snapshot) (RefreshResult, error)
}

// RefresherFunc adapts a function to Refresher.
type RefresherFunc func(ctx context.Context, snap Snapshot) (RefreshResult, error)

// Refresh calls f.
func (f RefresherFunc) Refresh(ctx context.Context, snap Snapshot) (RefreshResult, error) {
	return f(ctx, snap)
}

// RefreshResult is what a successful refresh contributes to the state.
type RefreshResult struct {
	// Briefing replaces the current briefing when non-empty.
	Briefing string
	// Metrics is merged into the store metrics before lastSync is stamped.
	Metrics models.StoreMetricsPatch
}

// IsLoading reports whether a refresh is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.isLoading
}

// RefreshData marks the store as loading, waits for the refresher and clears
// the flag on every path. lastSync only moves on success. Concurrent calls
// share the in-flight refresh.
func (s *Store) RefreshData(ctx context.Context) error {
	ch := s.refreshGroup.DoChan("refresh", func() (any, error) {
		return nil, s.refresh(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) refresh(ctx context.Context) (err error) {
	if s.refresher == nil {
		return ErrNoRefresher
	}

	var snap Snapshot
	s.update(func(st *state) bool {
		st.isLoading = true
		snap = st.snapshot()
		return true
	})

	start := s.now()
	defer func() {
		elapsed := s.now().Sub(start)
		s.update(func(st *state) bool {
			if !st.isLoading {
				return false
			}
			st.isLoading = false
			return true
		})
		s.observer.RefreshFinished(elapsed, err)
		if err != nil {
			s.log.Warn("refresh failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		} else {
			s.log.Info("refresh completed", zap.Duration("elapsed", elapsed))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
	defer cancel()

	type outcome struct {
		res RefreshResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("refresher panicked: %v", r)}
			}
		}()
		res, err := s.refresher.Refresh(ctx, snap)
		done <- outcome{res: res, err: err}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-ctx.Done():
		return fmt.Errorf("refresh: %w", ctx.Err())
	}
	if out.err != nil {
		return fmt.Errorf("refresh: %w", out.err)
	}

	synced := s.now()
	s.update(func(st *state) bool {
		st.isLoading = false
		out.res.Metrics.Apply(&st.storeMetrics)
		st.storeMetrics.LastSync = synced
		if out.res.Briefing != "" {
			st.briefing = out.res.Briefing
		}
		return true
	})
	return nil
}
