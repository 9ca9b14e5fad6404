package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/models"
	"smartstock/store"
)

func matchDay() models.Event {
	return models.Event{
		ID:                        "e1",
		Name:                      "Match Day",
		Type:                      models.EventFootball,
		Date:                      time.Date(2025, 10, 10, 19, 0, 0, 0, time.UTC),
		Impact:                    models.PriorityHigh,
		AffectedCategories:        []string{"Beverages", "Snacks", "Alcohol", "Household"},
		EstimatedDemandMultiplier: 2.0,
	}
}

func TestSynthesizeHighImpactEvent(t *testing.T) {
	e := matchDay()
	recs := store.SynthesizeRecommendations(e, fixedNow)

	require.Len(t, recs, 3)

	want := []struct {
		id         string
		name       string
		qty        int
		confidence float64
		impact     int
		category   string
	}{
		{"event-rec-e1-0", "Soft Drinks Multipack", 240, 0.92, 30000, "beverages"},
		{"event-rec-e1-1", "Party Snack Mix", 160, 0.90, 27000, "snacks"},
		{"event-rec-e1-2", "Beer Case (24 cans)", 120, 0.88, 24000, "alcohol"},
	}
	for i, w := range want {
		r := recs[i]
		assert.Equal(t, w.id, r.ID)
		assert.Equal(t, w.name, r.SKUName)
		require.NotNil(t, r.Quantity)
		assert.Equal(t, w.qty, *r.Quantity)
		assert.InDelta(t, w.confidence, r.Confidence, 1e-9)
		assert.Equal(t, w.impact, r.ImpactScore)
		assert.Equal(t, models.ActionStockUp, r.Action)
		assert.Equal(t, models.PriorityHigh, r.Priority)
		assert.Equal(t, fixedNow, r.CreatedAt)
		require.NotNil(t, r.ExpiresAt)
		assert.Equal(t, e.Date, *r.ExpiresAt)
		assert.Equal(t, []string{"Match Day expected to increase demand for " + w.category + " by 100%"}, r.Reasons)
	}
}

func TestSynthesizeDefaults(t *testing.T) {
	e := models.Event{
		ID:                 "e2",
		Name:               "Street Fair",
		AffectedCategories: []string{"Dairy"},
	}
	recs := store.SynthesizeRecommendations(e, fixedNow)

	require.Len(t, recs, 1)
	r := recs[0]
	assert.Equal(t, "Fresh Milk & Yogurt", r.SKUName)
	assert.Equal(t, 60, *r.Quantity)
	assert.InDelta(t, 0.85, r.Confidence, 1e-9)
	assert.Equal(t, 12000, r.ImpactScore)
	assert.Equal(t, models.PriorityMedium, r.Priority)
	assert.Equal(t, "Street Fair expected to increase demand for dairy by 50%", r.Reasons[0])
}

func TestSynthesizeLowImpact(t *testing.T) {
	e := models.Event{
		ID:                        "e3",
		Name:                      "Quiet Holiday",
		Impact:                    models.PriorityLow,
		AffectedCategories:        []string{"Ready-to-Eat", "Household"},
		EstimatedDemandMultiplier: 1.3,
	}
	recs := store.SynthesizeRecommendations(e, fixedNow)

	require.Len(t, recs, 2)
	assert.Equal(t, "Ready Meal Selection", recs[0].SKUName)
	assert.Equal(t, 65, *recs[0].Quantity)
	assert.InDelta(t, 0.78, recs[0].Confidence, 1e-9)
	assert.Equal(t, 5200, recs[0].ImpactScore)
	assert.Equal(t, "Household Essentials Kit", recs[1].SKUName)
	assert.Equal(t, 32, *recs[1].Quantity)
	assert.InDelta(t, 0.76, recs[1].Confidence, 1e-9)
}

func TestSynthesizeUnknownCategoryFallsBack(t *testing.T) {
	e := models.Event{
		ID:                        "e4",
		Name:                      "Toy Fair",
		Impact:                    models.PriorityMedium,
		AffectedCategories:        []string{"Toys"},
		EstimatedDemandMultiplier: 2.0,
	}
	recs := store.SynthesizeRecommendations(e, fixedNow)

	require.Len(t, recs, 1)
	assert.Equal(t, "Toys Bundle", recs[0].SKUName)
	assert.Equal(t, 60, *recs[0].Quantity)
	assert.Nil(t, recs[0].ImageURL)
}

func TestSynthesizeNoCategories(t *testing.T) {
	e := matchDay()
	e.AffectedCategories = nil

	assert.Empty(t, store.SynthesizeRecommendations(e, fixedNow))
}

func TestSynthesizeConfidenceInRange(t *testing.T) {
	for _, impact := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow, ""} {
		e := matchDay()
		e.Impact = impact
		for _, r := range store.SynthesizeRecommendations(e, fixedNow) {
			assert.GreaterOrEqual(t, r.Confidence, 0.0)
			assert.LessOrEqual(t, r.Confidence, 1.0)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  store.Category
	}{
		{"Beverages", store.CategoryBeverages},
		{"  snacks ", store.CategorySnacks},
		{"Ready-to-Eat", store.CategoryReadyToEat},
		{"ready to eat", store.CategoryReadyToEat},
		{"DAIRY", store.CategoryDairy},
		{"Alcohol", store.CategoryAlcohol},
		{"Household", store.CategoryHousehold},
		{"Instant Food", store.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, store.ParseCategory(tt.label))
		})
	}
}
