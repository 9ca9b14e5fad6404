package models

import (
	"slices"
	"time"
)

// RecAction is the inventory action a recommendation suggests.
type RecAction string

const (
	ActionRestock RecAction = "RESTOCK"
	ActionPromote RecAction = "PROMOTE"
	ActionReplace RecAction = "REPLACE"
	// ActionStockUp is only produced by event-driven synthesis. It extends the
	// three canonical actions rather than replacing one of them.
	ActionStockUp RecAction = "STOCK_UP"
)

// AllActions lists every action, canonical ones first.
var AllActions = []RecAction{ActionRestock, ActionPromote, ActionReplace, ActionStockUp}

// Valid reports whether a is a known action.
func (a RecAction) Valid() bool {
	return slices.Contains(AllActions, a)
}

// Canonical reports whether a is one of RESTOCK, PROMOTE or REPLACE.
func (a RecAction) Canonical() bool {
	return a == ActionRestock || a == ActionPromote || a == ActionReplace
}

// Priority ranks recommendations and doubles as the impact level of events.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Valid reports whether p is HIGH, MEDIUM or LOW.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Recommendation is a suggested inventory action for a single SKU.
type Recommendation struct {
	ID                   string     `json:"id" yaml:"id" validate:"required"`
	SKU                  string     `json:"sku" yaml:"sku"`
	SKUName              string     `json:"skuName" yaml:"skuName" validate:"required"`
	ImageURL             *string    `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Action               RecAction  `json:"action" yaml:"action" validate:"required,oneof=RESTOCK PROMOTE REPLACE STOCK_UP"`
	Confidence           float64    `json:"confidence" yaml:"confidence" validate:"gte=0,lte=1"`
	ImpactScore          int        `json:"impactScore" yaml:"impactScore" validate:"gte=0"`
	Reasons              []string   `json:"reasons" yaml:"reasons"`
	Quantity             *int       `json:"quantity,omitempty" yaml:"quantity,omitempty" validate:"omitempty,gte=0"`
	ShelfFit             bool       `json:"shelfFit" yaml:"shelfFit"`
	CrossSellSuggestions []string   `json:"crossSellSuggestions,omitempty" yaml:"crossSellSuggestions,omitempty"`
	EstimatedRevenue     *float64   `json:"estimatedRevenue,omitempty" yaml:"estimatedRevenue,omitempty"`
	Volatility           float64    `json:"volatility" yaml:"volatility" validate:"gte=0,lte=1"`
	Priority             Priority   `json:"priority" yaml:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
	CreatedAt            time.Time  `json:"createdAt" yaml:"createdAt"`
	ExpiresAt            *time.Time `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
}

// Clone returns a deep copy of r.
func (r Recommendation) Clone() Recommendation {
	out := r
	out.ImageURL = clonePtr(r.ImageURL)
	out.Reasons = slices.Clone(r.Reasons)
	out.Quantity = clonePtr(r.Quantity)
	out.CrossSellSuggestions = slices.Clone(r.CrossSellSuggestions)
	out.EstimatedRevenue = clonePtr(r.EstimatedRevenue)
	out.ExpiresAt = clonePtr(r.ExpiresAt)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
