package refresh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"smartstock/seed"
	"smartstock/store"
)

func TestSimulatedWaitsForDelay(t *testing.T) {
	defer goleak.VerifyNone(t)

	start := time.Now()
	res, err := NewSimulated(20*time.Millisecond).Refresh(context.Background(), store.Snapshot{})

	require.NoError(t, err)
	assert.Equal(t, store.RefreshResult{}, res)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSimulatedHonorsContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimulated(time.Hour).Refresh(ctx, store.Snapshot{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSimulatedDefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, NewSimulated(0).Delay)
}

func TestSimulatedDrivesStoreRefresh(t *testing.T) {
	defer goleak.VerifyNone(t)

	synced := time.Date(2025, 10, 4, 13, 0, 0, 0, time.UTC)
	s := store.New(seed.Default(),
		store.WithRefresher(NewSimulated(10*time.Millisecond)),
		store.WithClock(func() time.Time { return synced }),
	)

	require.NoError(t, s.RefreshData(context.Background()))
	assert.Equal(t, synced, s.Snapshot().StoreMetrics.LastSync)
}

func TestGeminiRefreshUsesPrompt(t *testing.T) {
	var prompt string
	g := &Gemini{generate: func(_ context.Context, p string) (string, error) {
		prompt = p
		return "  Restock noodles before the rain.\n", nil
	}}
	snap := store.New(seed.Default()).Snapshot()

	res, err := g.Refresh(context.Background(), snap)

	require.NoError(t, err)
	assert.Equal(t, "Restock noodles before the rain.", res.Briefing)
	assert.True(t, res.Metrics.Empty())
	assert.Contains(t, prompt, "Ho Chi Minh City")
	assert.Contains(t, prompt, "RESTOCK Cup Noodles Seafood")
	assert.Contains(t, prompt, "Football World Cup Finals on 2025-10-04")
	assert.NoError(t, g.Close())
}

func TestGeminiRefreshErrors(t *testing.T) {
	boom := errors.New("quota exceeded")
	g := &Gemini{generate: func(context.Context, string) (string, error) { return "", boom }}
	_, err := g.Refresh(context.Background(), store.Snapshot{})
	assert.ErrorIs(t, err, boom)

	g = &Gemini{generate: func(context.Context, string) (string, error) { return " ", nil }}
	_, err = g.Refresh(context.Background(), store.Snapshot{})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "")
	assert.Error(t, err)
}

func TestResponseText(t *testing.T) {
	assert.Empty(t, responseText(nil))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello, "), genai.Text("manager.")}},
	}}}
	assert.Equal(t, "Hello, manager.", responseText(resp))
}

func TestBriefingPromptLimitsItems(t *testing.T) {
	snap := store.New(seed.Default()).Snapshot()

	prompt := BriefingPrompt(snap)

	assert.Contains(t, prompt, "Pending recommendations: 12")
	assert.NotContains(t, prompt, "Hand Soap")
}
