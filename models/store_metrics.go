package models

import (
	"slices"
	"time"
)

// StoreMetrics is a snapshot of one store's health as shown on the greeting card.
type StoreMetrics struct {
	StoreID                string    `json:"storeId" yaml:"storeId" validate:"required"`
	StoreName              string    `json:"storeName" yaml:"storeName"`
	Rank                   int       `json:"rank" yaml:"rank"`
	TotalRanks             int       `json:"totalRanks" yaml:"totalRanks"`
	LastSync               time.Time `json:"lastSync" yaml:"lastSync"`
	Revenue                float64   `json:"revenue" yaml:"revenue"`
	RevenueDelta           float64   `json:"revenueDelta" yaml:"revenueDelta"`
	WasteReduction         float64   `json:"wasteReduction" yaml:"wasteReduction"`
	StockoutRate           float64   `json:"stockoutRate" yaml:"stockoutRate"`
	CustomerSatisfaction   float64   `json:"customerSatisfaction" yaml:"customerSatisfaction"`
	PendingRecommendations int       `json:"pendingRecommendations" yaml:"pendingRecommendations"`
}

// StoreMetricsPatch is a partial StoreMetrics update. Nil fields are left untouched.
type StoreMetricsPatch struct {
	StoreID                *string    `json:"storeId,omitempty"`
	StoreName              *string    `json:"storeName,omitempty"`
	Rank                   *int       `json:"rank,omitempty"`
	TotalRanks             *int       `json:"totalRanks,omitempty"`
	LastSync               *time.Time `json:"lastSync,omitempty"`
	Revenue                *float64   `json:"revenue,omitempty"`
	RevenueDelta           *float64   `json:"revenueDelta,omitempty"`
	WasteReduction         *float64   `json:"wasteReduction,omitempty"`
	StockoutRate           *float64   `json:"stockoutRate,omitempty"`
	CustomerSatisfaction   *float64   `json:"customerSatisfaction,omitempty"`
	PendingRecommendations *int       `json:"pendingRecommendations,omitempty"`
}

// Apply shallow-merges p into m.
func (p StoreMetricsPatch) Apply(m *StoreMetrics) {
	setIf(&m.StoreID, p.StoreID)
	setIf(&m.StoreName, p.StoreName)
	setIf(&m.Rank, p.Rank)
	setIf(&m.TotalRanks, p.TotalRanks)
	setIf(&m.LastSync, p.LastSync)
	setIf(&m.Revenue, p.Revenue)
	setIf(&m.RevenueDelta, p.RevenueDelta)
	setIf(&m.WasteReduction, p.WasteReduction)
	setIf(&m.StockoutRate, p.StockoutRate)
	setIf(&m.CustomerSatisfaction, p.CustomerSatisfaction)
	setIf(&m.PendingRecommendations, p.PendingRecommendations)
}

// Empty reports whether p changes nothing.
func (p StoreMetricsPatch) Empty() bool {
	return p == StoreMetricsPatch{}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Bundle is a multi-item promotional offer. Older datasets carry
// AttachRate/ProjectedUplift, newer ones PotentialRevenueLift.
type Bundle struct {
	ID                   string   `json:"id" yaml:"id" validate:"required"`
	Name                 string   `json:"name" yaml:"name"`
	Items                []string `json:"items" yaml:"items"`
	AttachRate           *float64 `json:"attachRate,omitempty" yaml:"attachRate,omitempty"`
	ProjectedUplift      float64  `json:"projectedUplift" yaml:"projectedUplift"`
	PotentialRevenueLift *float64 `json:"potentialRevenueLift,omitempty" yaml:"potentialRevenueLift,omitempty"`
	Active               bool     `json:"active" yaml:"active"`
	Price                float64  `json:"price" yaml:"price"`
	Discount             float64  `json:"discount" yaml:"discount"`
	Description          *string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Clone returns a deep copy of b.
func (b Bundle) Clone() Bundle {
	out := b
	out.Items = slices.Clone(b.Items)
	out.AttachRate = clonePtr(b.AttachRate)
	out.PotentialRevenueLift = clonePtr(b.PotentialRevenueLift)
	out.Description = clonePtr(b.Description)
	return out
}

// KPITile is a single headline metric with an optional trend.
type KPITile struct {
	Title         string    `json:"title" yaml:"title" validate:"required"`
	Value         string    `json:"value" yaml:"value"`
	Delta         *float64  `json:"delta,omitempty" yaml:"delta,omitempty"`
	DeltaType     string    `json:"deltaType,omitempty" yaml:"deltaType,omitempty" validate:"omitempty,oneof=increase decrease"`
	SparklineData []float64 `json:"sparklineData,omitempty" yaml:"sparklineData,omitempty"`
	Unit          string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	Tooltip       string    `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// Clone returns a deep copy of k.
func (k KPITile) Clone() KPITile {
	out := k
	out.Delta = clonePtr(k.Delta)
	out.SparklineData = slices.Clone(k.SparklineData)
	return out
}

// DemandBubble is one point of the demand bubble chart.
type DemandBubble struct {
	SKU        string    `json:"sku" yaml:"sku"`
	X          float64   `json:"x" yaml:"x"`
	Y          float64   `json:"y" yaml:"y"`
	Size       float64   `json:"size" yaml:"size"`
	Color      string    `json:"color" yaml:"color"`
	Volatility float64   `json:"volatility" yaml:"volatility"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
	Label      string    `json:"label" yaml:"label"`
	Action     RecAction `json:"action" yaml:"action"`
}

// ActionColor is the bubble colour used for an action class.
func ActionColor(a RecAction) string {
	switch a {
	case ActionRestock:
		return "#16A34A"
	case ActionPromote:
		return "#2563EB"
	case ActionReplace:
		return "#DC2626"
	case ActionStockUp:
		return "#F59E0B"
	}
	return "#6B7280"
}

// WeatherImpact summarises the forecast and its effect on demand.
type WeatherImpact struct {
	Condition          string   `json:"condition" yaml:"condition" validate:"omitempty,oneof=SUNNY RAINY CLOUDY HOT COLD"`
	Temperature        float64  `json:"temperature" yaml:"temperature"`
	Humidity           float64  `json:"humidity" yaml:"humidity"`
	Forecast48h        string   `json:"forecast48h" yaml:"forecast48h"`
	DemandModifier     float64  `json:"demandModifier" yaml:"demandModifier"`
	AffectedCategories []string `json:"affectedCategories" yaml:"affectedCategories"`
}

// Clone returns a deep copy of w.
func (w WeatherImpact) Clone() WeatherImpact {
	out := w
	out.AffectedCategories = slices.Clone(w.AffectedCategories)
	return out
}

// SKU is a sellable product in the store catalogue.
type SKU struct {
	ID           string  `json:"id" yaml:"id" validate:"required"`
	Name         string  `json:"name" yaml:"name"`
	Category     string  `json:"category" yaml:"category"`
	CurrentStock int     `json:"currentStock" yaml:"currentStock"`
	MinStock     int     `json:"minStock" yaml:"minStock"`
	MaxStock     int     `json:"maxStock" yaml:"maxStock"`
	Price        float64 `json:"price" yaml:"price"`
	ImageURL     *string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Barcode      string  `json:"barcode" yaml:"barcode"`
	Supplier     string  `json:"supplier" yaml:"supplier"`
}

// BelowMinimum reports whether the SKU needs restocking.
func (s SKU) BelowMinimum() bool {
	return s.CurrentStock < s.MinStock
}

// Clone returns a deep copy of s.
func (s SKU) Clone() SKU {
	out := s
	out.ImageURL = clonePtr(s.ImageURL)
	return out
}
