package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/seed"
	"smartstock/store"
)

func TestObserverUpdatesCollectors(t *testing.T) {
	m := New()
	s := store.New(seed.Default(), store.WithObserver(m))

	assert.Equal(t, 12.0, testutil.ToFloat64(m.Pending))

	s.ApproveRecommendation("rec-001")
	s.DeferRecommendation("rec-002")
	s.AddEvent(seed.Default().Events[0])
	s.GenerateEventRecommendations(seed.Default().Events[0])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues(store.OutcomeApproved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues(store.OutcomeDeferred)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsAdded))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Synthesized))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.Pending))
}

func TestRefreshFinishedRecordsResult(t *testing.T) {
	m := New()

	m.RefreshFinished(time.Second, nil)
	m.RefreshFinished(2*time.Second, errors.New("down"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.RefreshDuration))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.EventAdded()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "smartstock_events_added_total 1")
}
