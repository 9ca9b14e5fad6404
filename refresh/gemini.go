package refresh

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"smartstock/models"
	"smartstock/store"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

const maxBriefingItems = 5

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("gemini returned an empty response")

type generateFunc func(ctx context.Context, prompt string) (string, error)

// Gemini asks a Gemini model for a short store briefing on every refresh.
type Gemini struct {
	client   *genai.Client
	generate generateFunc
}

// NewGemini creates a Gemini source authenticated with apiKey.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	return &Gemini{
		client: client,
		generate: func(ctx context.Context, prompt string) (string, error) {
			resp, err := model.GenerateContent(ctx, genai.Text(prompt))
			if err != nil {
				return "", err
			}
			return responseText(resp), nil
		},
	}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Refresh generates a briefing for the given snapshot.
func (g *Gemini) Refresh(ctx context.Context, snap store.Snapshot) (store.RefreshResult, error) {
	text, err := g.generate(ctx, BriefingPrompt(snap))
	if err != nil {
		return store.RefreshResult{}, fmt.Errorf("generate briefing: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return store.RefreshResult{}, ErrEmptyResponse
	}
	return store.RefreshResult{Briefing: text}, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// BriefingPrompt renders the snapshot facts the model is asked to summarise.
func BriefingPrompt(snap store.Snapshot) string {
	var b strings.Builder
	m := snap.StoreMetrics
	fmt.Fprintf(&b, "You are a retail operations assistant for %s (rank %d of %d).\n", m.StoreName, m.Rank, m.TotalRanks)
	b.WriteString("Write a briefing of at most three sentences for the store manager. Plain text only.\n\n")
	fmt.Fprintf(&b, "Revenue: %.2f (%+.1f%%). Stockout rate: %.1f%%. Pending recommendations: %d.\n",
		m.Revenue, m.RevenueDelta, m.StockoutRate, m.PendingRecommendations)

	if len(snap.Recommendations) > 0 {
		b.WriteString("\nTop recommendations:\n")
		for _, r := range firstN(snap.Recommendations, maxBriefingItems) {
			fmt.Fprintf(&b, "- %s %s (priority %s, confidence %.0f%%)\n", r.Action, r.SKUName, r.Priority, r.Confidence*100)
		}
	}
	if len(snap.Events) > 0 {
		b.WriteString("\nUpcoming events:\n")
		for _, e := range firstN(snap.Events, maxBriefingItems) {
			fmt.Fprintf(&b, "- %s on %s, impact %s, categories %s\n",
				e.Name, e.Date.Format("2006-01-02"), impactLabel(e.Impact), strings.Join(e.AffectedCategories, ", "))
		}
	}
	return b.String()
}

func impactLabel(p models.Priority) string {
	if p == "" {
		return string(models.PriorityMedium)
	}
	return string(p)
}

func firstN[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}
