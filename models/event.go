package models

import (
	"slices"
	"time"
)

// EventType classifies a demand-affecting occurrence.
type EventType string

const (
	EventFootball EventType = "FOOTBALL"
	EventFestival EventType = "FESTIVAL"
	EventConcert  EventType = "CONCERT"
	EventWeather  EventType = "WEATHER"
	EventHoliday  EventType = "HOLIDAY"
)

// Event is a sporting match, festival, weather advisory or similar occurrence
// expected to shift demand for some categories.
type Event struct {
	ID                        string    `json:"id" yaml:"id" validate:"required"`
	Name                      string    `json:"name" yaml:"name" validate:"required"`
	Type                      EventType `json:"type" yaml:"type" validate:"omitempty,oneof=FOOTBALL FESTIVAL CONCERT WEATHER HOLIDAY"`
	Date                      time.Time `json:"date" yaml:"date"`
	Impact                    Priority  `json:"impact" yaml:"impact" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	AffectedCategories        []string  `json:"affectedCategories" yaml:"affectedCategories"`
	EstimatedDemandMultiplier float64   `json:"estimatedDemandMultiplier" yaml:"estimatedDemandMultiplier" validate:"gte=0"`
	Location                  *string   `json:"location,omitempty" yaml:"location,omitempty"`
	Description               *string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Clone returns a deep copy of e.
func (e Event) Clone() Event {
	out := e
	out.AffectedCategories = slices.Clone(e.AffectedCategories)
	out.Location = clonePtr(e.Location)
	out.Description = clonePtr(e.Description)
	return out
}

// Upcoming reports whether e falls within [now, now+window].
func (e Event) Upcoming(now time.Time, window time.Duration) bool {
	return !e.Date.Before(now) && !e.Date.After(now.Add(window))
}
