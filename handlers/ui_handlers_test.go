package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/store"
)

func TestUIState(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := srv.do(t, http.MethodPut, "/api/v1/ui/tab", map[string]string{"tab": "inventory"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodPut, "/api/v1/ui/tab", map[string]string{"tab": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, env := srv.do(t, http.MethodPost, "/api/v1/ui/theme/toggle", nil)
	assert.Equal(t, map[string]any{"theme": "dark", "resolvedTheme": "dark"}, decode[map[string]any](t, env))

	_, env = srv.do(t, http.MethodGet, "/api/v1/ui", nil)
	ui := decode[map[string]any](t, env)
	assert.Equal(t, "inventory", ui["activeTab"])
	assert.Equal(t, "dark", ui["theme"])
	assert.Equal(t, false, ui["isLoading"])
}

func TestUpdateStoreMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, env := srv.do(t, http.MethodPatch, "/api/v1/metrics/store", map[string]any{"revenue": 130000, "rank": 2})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	m := decode[map[string]any](t, env)
	assert.Equal(t, 130000.0, m["revenue"])
	assert.Equal(t, 2.0, m["rank"])
	assert.Equal(t, 250.0, m["totalRanks"])

	_, env = srv.do(t, http.MethodGet, "/api/v1/metrics/store", nil)
	assert.Equal(t, 130000.0, decode[map[string]any](t, env)["revenue"])
}

func TestRefreshWait(t *testing.T) {
	synced := time.Date(2025, 10, 4, 13, 0, 0, 0, time.UTC)
	srv := newTestServer(t,
		store.WithClock(func() time.Time { return synced }),
		store.WithRefresher(store.RefresherFunc(func(context.Context, store.Snapshot) (store.RefreshResult, error) {
			return store.RefreshResult{Briefing: "Stock up on drinks."}, nil
		})),
	)

	resp, env := srv.do(t, http.MethodPost, "/api/v1/refresh?wait=true", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]any](t, env)
	assert.Equal(t, false, body["isLoading"])
	assert.Equal(t, "Stock up on drinks.", body["briefing"])
	assert.Equal(t, synced, srv.store.Snapshot().StoreMetrics.LastSync)
}

func TestRefreshWaitErrors(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := srv.do(t, http.MethodPost, "/api/v1/refresh?wait=true", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	srv = newTestServer(t, store.WithRefresher(store.RefresherFunc(func(context.Context, store.Snapshot) (store.RefreshResult, error) {
		return store.RefreshResult{}, errors.New("down")
	})))
	resp, _ = srv.do(t, http.MethodPost, "/api/v1/refresh?wait=true", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.False(t, srv.store.IsLoading())
}

func TestRefreshAsync(t *testing.T) {
	done := make(chan struct{})
	srv := newTestServer(t, store.WithRefresher(store.RefresherFunc(func(context.Context, store.Snapshot) (store.RefreshResult, error) {
		defer close(done)
		return store.RefreshResult{}, nil
	})))

	resp, _ := srv.do(t, http.MethodPost, "/api/v1/refresh", nil)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresh never ran")
	}
	require.Eventually(t, func() bool { return !srv.store.IsLoading() }, time.Second, 5*time.Millisecond)
}
