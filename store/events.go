package store

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartstock/models"
)

// AddEvent prepends e to the events, newest first. An empty id is replaced
// with a generated one. The stored event is returned.
func (s *Store) AddEvent(e models.Event) models.Event {
	e = e.Clone()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.update(func(st *state) bool {
		st.events = append([]models.Event{e}, st.events...)
		return true
	})
	s.observer.EventAdded()
	s.log.Debug("event added", zap.String("id", e.ID), zap.String("name", e.Name))
	return e.Clone()
}

// GenerateEventRecommendations synthesises up to three STOCK_UP
// recommendations from e, prepends them and raises the pending counter by the
// number of new records. The created records are returned.
func (s *Store) GenerateEventRecommendations(e models.Event) []models.Recommendation {
	recs := SynthesizeRecommendations(e, s.now())
	if len(recs) == 0 {
		return recs
	}

	var added, pending int
	s.update(func(st *state) bool {
		added = st.prependRecommendations(recs)
		st.storeMetrics.PendingRecommendations += added
		pending = st.storeMetrics.PendingRecommendations
		return true
	})
	s.observer.RecommendationsSynthesized(added)
	s.log.Info("synthesized event recommendations",
		zap.String("event", e.ID),
		zap.Int("created", len(recs)),
		zap.Int("new", added),
		zap.Int("pending", pending))
	return recs
}
