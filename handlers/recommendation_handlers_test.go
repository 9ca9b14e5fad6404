package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/models"
)

type listResponse struct {
	Items      []models.Recommendation `json:"items"`
	Pagination struct {
		TotalItems int `json:"totalItems"`
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

func TestListRecommendationsPaged(t *testing.T) {
	srv := newTestServer(t)

	_, env := srv.do(t, http.MethodGet, "/api/v1/recommendations?page=3&pageSize=5", nil)

	list := decode[listResponse](t, env)
	assert.Equal(t, 12, list.Pagination.TotalItems)
	assert.Equal(t, 3, list.Pagination.TotalPages)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "rec-011", list.Items[0].ID)
}

func TestListRecommendationsPastLastPage(t *testing.T) {
	srv := newTestServer(t)

	resp, env := srv.do(t, http.MethodGet, "/api/v1/recommendations?page=92233720368547760&pageSize=100", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[listResponse](t, env)
	assert.Equal(t, 12, list.Pagination.TotalItems)
	assert.Empty(t, list.Items)
}

func TestListRecommendationsFilters(t *testing.T) {
	srv := newTestServer(t)

	_, env := srv.do(t, http.MethodGet, "/api/v1/recommendations?q=beer", nil)
	list := decode[listResponse](t, env)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "rec-004", list.Items[0].ID)

	_, env = srv.do(t, http.MethodGet, "/api/v1/recommendations?action=replace", nil)
	list = decode[listResponse](t, env)
	require.Len(t, list.Items, 1)
	assert.Equal(t, models.ActionReplace, list.Items[0].Action)

	resp, _ := srv.do(t, http.MethodGet, "/api/v1/recommendations?action=SELL", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListRecommendationsUsesStoredSearch(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := srv.do(t, http.MethodPut, "/api/v1/ui/search", map[string]string{"query": "SKU-01"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, env := srv.do(t, http.MethodGet, "/api/v1/recommendations", nil)
	list := decode[listResponse](t, env)
	// sku-010 .. sku-016 carry the prefix.
	assert.Equal(t, 7, list.Pagination.TotalItems)
}

func TestRecommendationSummary(t *testing.T) {
	srv := newTestServer(t)

	_, env := srv.do(t, http.MethodGet, "/api/v1/recommendations/summary", nil)

	summary := decode[struct {
		Total    int            `json:"total"`
		ByAction map[string]int `json:"byAction"`
	}](t, env)
	assert.Equal(t, 12, summary.Total)
	assert.Equal(t, map[string]int{"RESTOCK": 6, "PROMOTE": 5, "REPLACE": 1, "STOCK_UP": 0}, summary.ByAction)
}

func TestApproveAndReject(t *testing.T) {
	srv := newTestServer(t)

	resp, env := srv.do(t, http.MethodPost, "/api/v1/recommendations/rec-001/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]any](t, env)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, 11.0, body["pendingRecommendations"])

	_, env = srv.do(t, http.MethodPost, "/api/v1/recommendations/missing/reject", nil)
	body = decode[map[string]any](t, env)
	assert.Equal(t, false, body["found"])
	assert.Equal(t, 10.0, body["pendingRecommendations"])

	assert.Len(t, srv.store.Snapshot().Recommendations, 11)
}

func TestDeferRecommendation(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := srv.do(t, http.MethodPost, "/api/v1/recommendations/rec-001/defer", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.PriorityLow, srv.store.Snapshot().Recommendations[0].Priority)

	resp, _ = srv.do(t, http.MethodPost, "/api/v1/recommendations/missing/defer", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelectionAndBatchApprove(t *testing.T) {
	srv := newTestServer(t)

	srv.do(t, http.MethodPost, "/api/v1/recommendations/rec-001/select", nil)
	_, env := srv.do(t, http.MethodPost, "/api/v1/recommendations/rec-002/select", nil)
	assert.Equal(t, []any{"rec-001", "rec-002"}, decode[map[string]any](t, env)["selected"])

	_, env = srv.do(t, http.MethodPost, "/api/v1/recommendations/batch-approve", nil)
	body := decode[map[string]any](t, env)
	assert.Equal(t, 2.0, body["removed"])
	assert.Equal(t, 10.0, body["pendingRecommendations"])

	_, env = srv.do(t, http.MethodPost, "/api/v1/recommendations/select-all", nil)
	assert.Len(t, decode[map[string][]string](t, env)["selected"], 10)

	srv.do(t, http.MethodPost, "/api/v1/recommendations/deselect-all", nil)
	assert.Empty(t, srv.store.Snapshot().SelectedRecommendations)
}

func TestCursorNavigation(t *testing.T) {
	srv := newTestServer(t)

	_, env := srv.do(t, http.MethodPost, "/api/v1/recommendations/previous", nil)
	assert.Equal(t, 11.0, decode[map[string]any](t, env)["index"])

	_, env = srv.do(t, http.MethodPost, "/api/v1/recommendations/next", nil)
	assert.Equal(t, 0.0, decode[map[string]any](t, env)["index"])

	_, env = srv.do(t, http.MethodPut, "/api/v1/recommendations/cursor", map[string]int{"index": 4})
	cursor := decode[struct {
		Index          int                   `json:"index"`
		Recommendation models.Recommendation `json:"recommendation"`
	}](t, env)
	assert.Equal(t, 4, cursor.Index)
	assert.Equal(t, "rec-005", cursor.Recommendation.ID)

	resp, _ := srv.do(t, http.MethodPut, "/api/v1/recommendations/cursor", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
