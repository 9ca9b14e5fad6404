package store

import "smartstock/models"

// Snapshot is a read-only copy of the store state.
type Snapshot struct {
	SKUs            []models.SKU            `json:"skus"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Events          []models.Event          `json:"events"`
	StoreMetrics    models.StoreMetrics     `json:"storeMetrics"`
	WeatherImpact   models.WeatherImpact    `json:"weatherImpact"`
	UserProfile     models.UserProfile      `json:"userProfile"`
	Bundles         []models.Bundle         `json:"bundles"`
	KPITiles        []models.KPITile        `json:"kpiTiles"`
	DemandBubbles   []models.DemandBubble   `json:"demandBubbles"`

	ActiveTab                  string       `json:"activeTab"`
	SelectedRecommendations    []string     `json:"selectedRecommendations"`
	IsLoading                  bool         `json:"isLoading"`
	SearchQuery                string       `json:"searchQuery"`
	Theme                      models.Theme `json:"theme"`
	ResolvedTheme              models.Theme `json:"resolvedTheme"`
	CurrentRecommendationIndex int          `json:"currentRecommendationIndex"`
	Briefing                   string       `json:"briefing,omitempty"`

	// RecommendationCount is len(Recommendations), reported next to the
	// incrementally maintained StoreMetrics.PendingRecommendations.
	RecommendationCount int `json:"recommendationCount"`
}

// CurrentRecommendation returns the recommendation under the pagination cursor.
func (s Snapshot) CurrentRecommendation() (models.Recommendation, bool) {
	if s.CurrentRecommendationIndex < 0 || s.CurrentRecommendationIndex >= len(s.Recommendations) {
		return models.Recommendation{}, false
	}
	return s.Recommendations[s.CurrentRecommendationIndex], true
}

// Preferences returns the persisted subset of the snapshot.
func (s Snapshot) Preferences() models.Preferences {
	return models.Preferences{Theme: s.Theme, ActiveTab: s.ActiveTab}
}

func (st *state) snapshot() Snapshot {
	selected := make([]string, len(st.selected))
	copy(selected, st.selected)
	return Snapshot{
		SKUs:                       cloneAll(st.skus),
		Recommendations:            cloneAll(st.recommendations),
		Events:                     cloneAll(st.events),
		StoreMetrics:               st.storeMetrics,
		WeatherImpact:              st.weatherImpact.Clone(),
		UserProfile:                st.userProfile.Clone(),
		Bundles:                    cloneAll(st.bundles),
		KPITiles:                   cloneAll(st.kpiTiles),
		DemandBubbles:              cloneSlice(st.demandBubbles),
		ActiveTab:                  st.activeTab,
		SelectedRecommendations:    selected,
		IsLoading:                  st.isLoading,
		SearchQuery:                st.searchQuery,
		Theme:                      st.theme,
		ResolvedTheme:              st.resolvedTheme,
		CurrentRecommendationIndex: st.cursor,
		Briefing:                   st.briefing,
		RecommendationCount:        len(st.recommendations),
	}
}
