package store

import (
	"slices"

	"go.uber.org/zap"

	"smartstock/models"
)

// Decision outcomes reported to the Observer.
const (
	OutcomeApproved = "approved"
	OutcomeRejected = "rejected"
	OutcomeDeferred = "deferred"
)

// ToggleRecommendationSelection adds id to the selection if absent and
// removes it otherwise.
func (s *Store) ToggleRecommendationSelection(id string) {
	s.update(func(st *state) bool {
		if i := slices.Index(st.selected, id); i >= 0 {
			st.selected = slices.Delete(st.selected, i, i+1)
		} else {
			st.selected = append(st.selected, id)
		}
		return true
	})
}

// SelectAllRecommendations selects exactly the current recommendation ids.
func (s *Store) SelectAllRecommendations() {
	s.update(func(st *state) bool {
		st.selected = make([]string, 0, len(st.recommendations))
		for _, r := range st.recommendations {
			st.selected = append(st.selected, r.ID)
		}
		return true
	})
}

// DeselectAllRecommendations empties the selection.
func (s *Store) DeselectAllRecommendations() {
	s.update(func(st *state) bool {
		st.selected = nil
		return true
	})
}

// ApproveRecommendation removes the recommendation with the given id. It
// reports whether the id was present.
//
// The pending counter is decremented even when the id is unknown; callers
// relying on the counter must only pass ids they read from the store.
func (s *Store) ApproveRecommendation(id string) bool {
	return s.resolve(id, OutcomeApproved)
}

// RejectRecommendation removes the recommendation with the given id. Counter
// semantics match ApproveRecommendation.
func (s *Store) RejectRecommendation(id string) bool {
	return s.resolve(id, OutcomeRejected)
}

func (s *Store) resolve(id, outcome string) bool {
	var (
		found   bool
		pending int
	)
	s.update(func(st *state) bool {
		found = st.removeRecommendations(map[string]struct{}{id: {}}) > 0
		st.storeMetrics.PendingRecommendations--
		pending = st.storeMetrics.PendingRecommendations
		return true
	})
	if found {
		s.observer.RecommendationsResolved(outcome, 1)
	}
	s.log.Debug("recommendation resolved",
		zap.String("id", id),
		zap.String("outcome", outcome),
		zap.Bool("found", found),
		zap.Int("pending", pending))
	return found
}

// DeferRecommendation downgrades the recommendation's priority to LOW. The
// collection length and pending counter are unchanged.
func (s *Store) DeferRecommendation(id string) bool {
	var found bool
	s.update(func(st *state) bool {
		for i := range st.recommendations {
			if st.recommendations[i].ID == id {
				st.recommendations[i].Priority = models.PriorityLow
				found = true
				return true
			}
		}
		return false
	})
	if found {
		s.observer.RecommendationsResolved(OutcomeDeferred, 1)
	}
	return found
}

// BatchApproveRecommendations removes every selected recommendation, clears
// the selection and decrements the pending counter by the selection size, as
// one transition. It returns the number of recommendations removed.
func (s *Store) BatchApproveRecommendations() int {
	var removed, selected int
	s.update(func(st *state) bool {
		selected = len(st.selected)
		ids := make(map[string]struct{}, selected)
		for _, id := range st.selected {
			ids[id] = struct{}{}
		}
		st.selected = nil
		removed = st.removeRecommendations(ids)
		st.storeMetrics.PendingRecommendations -= selected
		return true
	})
	if removed > 0 {
		s.observer.RecommendationsResolved(OutcomeApproved, removed)
	}
	s.log.Debug("batch approved recommendations", zap.Int("selected", selected), zap.Int("removed", removed))
	return removed
}

// NextRecommendation advances the cursor, wrapping to 0 after the last item.
func (s *Store) NextRecommendation() int {
	return s.moveCursor(1)
}

// PreviousRecommendation moves the cursor back, wrapping to the last item.
func (s *Store) PreviousRecommendation() int {
	return s.moveCursor(-1)
}

func (s *Store) moveCursor(step int) int {
	var cursor int
	s.update(func(st *state) bool {
		n := len(st.recommendations)
		if n == 0 {
			st.cursor = 0
		} else {
			st.cursor = ((st.cursor+step)%n + n) % n
		}
		cursor = st.cursor
		return true
	})
	return cursor
}

// SetRecommendationIndex moves the cursor to i, clamped into the collection.
func (s *Store) SetRecommendationIndex(i int) int {
	var cursor int
	s.update(func(st *state) bool {
		st.cursor = i
		st.clampCursor()
		cursor = st.cursor
		return true
	})
	return cursor
}

// removeRecommendations drops every recommendation whose id is in ids, prunes
// those ids from the selection and clamps the cursor. It returns how many
// recommendations were removed. The pending counter is left to the caller.
func (st *state) removeRecommendations(ids map[string]struct{}) int {
	before := len(st.recommendations)
	st.recommendations = slices.DeleteFunc(st.recommendations, func(r models.Recommendation) bool {
		_, hit := ids[r.ID]
		return hit
	})
	st.selected = slices.DeleteFunc(st.selected, func(id string) bool {
		_, hit := ids[id]
		return hit
	})
	st.clampCursor()
	return before - len(st.recommendations)
}

// prependRecommendations puts recs in front of the collection, replacing any
// existing records with the same id, and returns how many ids are new.
func (st *state) prependRecommendations(recs []models.Recommendation) int {
	ids := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		ids[r.ID] = struct{}{}
	}
	replaced := st.removeRecommendations(ids)
	st.recommendations = append(cloneAll(recs), st.recommendations...)
	return len(recs) - replaced
}

func (st *state) clampCursor() {
	last := max(0, len(st.recommendations)-1)
	st.cursor = min(max(st.cursor, 0), last)
}
