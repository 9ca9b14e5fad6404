package store

import (
	"fmt"
	"math"
	"strings"
	"time"

	"smartstock/models"
)

const (
	maxSynthesized     = 3
	defaultMultiplier  = 1.5
	defaultImpact      = models.PriorityMedium
	confidenceStepPct  = -2
	impactDecayPerRank = 0.1
	fallbackQuantity   = 30
	synthVolatility    = 0.5
)

// Category is a product category the synthesis heuristic has a template for.
type Category int

const (
	CategoryOther Category = iota
	CategoryBeverages
	CategorySnacks
	CategoryReadyToEat
	CategoryDairy
	CategoryAlcohol
	CategoryHousehold
)

// ParseCategory maps a free-text category label onto a known Category.
// Matching ignores case, surrounding space and the hyphen/space spelling of
// "ready-to-eat".
func ParseCategory(label string) Category {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-")
	switch norm {
	case "beverages":
		return CategoryBeverages
	case "snacks":
		return CategorySnacks
	case "ready-to-eat":
		return CategoryReadyToEat
	case "dairy":
		return CategoryDairy
	case "alcohol":
		return CategoryAlcohol
	case "household":
		return CategoryHousehold
	}
	return CategoryOther
}

type stockTemplate struct {
	name     string
	imageURL string
	baseQty  int
}

func (c Category) template(label string) stockTemplate {
	switch c {
	case CategoryBeverages:
		return stockTemplate{name: "Soft Drinks Multipack", imageURL: "/beverages.png", baseQty: 120}
	case CategorySnacks:
		return stockTemplate{name: "Party Snack Mix", imageURL: "/snacks.png", baseQty: 80}
	case CategoryReadyToEat:
		return stockTemplate{name: "Ready Meal Selection", imageURL: "/ready-meals.png", baseQty: 50}
	case CategoryDairy:
		return stockTemplate{name: "Fresh Milk & Yogurt", imageURL: "/dairy.png", baseQty: 40}
	case CategoryAlcohol:
		return stockTemplate{name: "Beer Case (24 cans)", imageURL: "/beer.png", baseQty: 60}
	case CategoryHousehold:
		return stockTemplate{name: "Household Essentials Kit", imageURL: "/household.png", baseQty: 25}
	case CategoryOther:
	}
	return stockTemplate{name: label + " Bundle", baseQty: fallbackQuantity}
}

func baseImpact(p models.Priority) float64 {
	switch p {
	case models.PriorityHigh:
		return 15000
	case models.PriorityLow:
		return 4000
	}
	return 8000
}

func baseConfidencePct(p models.Priority) int {
	switch p {
	case models.PriorityHigh:
		return 92
	case models.PriorityLow:
		return 78
	}
	return 85
}

// SynthesizeRecommendations derives one STOCK_UP recommendation for each of
// the first three affected categories of e. It is deterministic for a given
// now. A zero or negative multiplier counts as 1.5 and a missing or unknown
// impact as MEDIUM.
func SynthesizeRecommendations(e models.Event, now time.Time) []models.Recommendation {
	categories := e.AffectedCategories
	if len(categories) > maxSynthesized {
		categories = categories[:maxSynthesized]
	}
	if len(categories) == 0 {
		return nil
	}

	multiplier := e.EstimatedDemandMultiplier
	if multiplier <= 0 {
		multiplier = defaultMultiplier
	}
	impact := e.Impact
	if !impact.Valid() {
		impact = defaultImpact
	}
	impactBase := baseImpact(impact)
	confidenceBase := baseConfidencePct(impact)
	upliftPct := int(math.Floor((multiplier - 1) * 100))
	expires := e.Date

	recs := make([]models.Recommendation, 0, len(categories))
	for i, label := range categories {
		tpl := ParseCategory(label).template(label)
		quantity := int(math.Floor(float64(tpl.baseQty) * multiplier))
		confidence := float64(confidenceBase+i*confidenceStepPct) / 100
		score := int(math.Floor(impactBase * multiplier * (1 - float64(i)*impactDecayPerRank)))

		rec := models.Recommendation{
			ID:          fmt.Sprintf("event-rec-%s-%d", e.ID, i),
			SKU:         "category-" + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-"),
			SKUName:     tpl.name,
			Action:      models.ActionStockUp,
			Confidence:  math.Min(1, math.Max(0, confidence)),
			ImpactScore: max(0, score),
			Reasons: []string{
				fmt.Sprintf("%s expected to increase demand for %s by %d%%", e.Name, strings.ToLower(label), upliftPct),
			},
			Quantity:   &quantity,
			ShelfFit:   true,
			Volatility: synthVolatility,
			Priority:   impact,
			CreatedAt:  now,
			ExpiresAt:  &expires,
		}
		if tpl.imageURL != "" {
			img := tpl.imageURL
			rec.ImageURL = &img
		}
		recs = append(recs, rec)
	}
	return recs
}
