package store

import (
	"strings"

	"go.uber.org/zap"

	"smartstock/models"
)

// SetActiveTab replaces the active tab. Blank names are ignored and reported
// as false.
func (s *Store) SetActiveTab(tab string) bool {
	if strings.TrimSpace(tab) == "" {
		return false
	}
	s.update(func(st *state) bool {
		if st.activeTab == tab {
			return false
		}
		st.activeTab = tab
		return true
	})
	return true
}

// SetSearchQuery stores q verbatim. Filtering is left to the reader.
func (s *Store) SetSearchQuery(q string) {
	s.update(func(st *state) bool {
		if st.searchQuery == q {
			return false
		}
		st.searchQuery = q
		return true
	})
}

// ToggleTheme cycles light -> dark -> system -> light and returns the new
// theme together with the light/dark mode it resolves to.
func (s *Store) ToggleTheme() (theme, resolved models.Theme) {
	s.update(func(st *state) bool {
		st.theme = st.theme.Next()
		st.resolvedTheme = s.resolveTheme(st.theme)
		theme, resolved = st.theme, st.resolvedTheme
		return true
	})
	s.log.Debug("theme toggled", zap.String("theme", string(theme)), zap.String("resolved", string(resolved)))
	return theme, resolved
}

func (s *Store) resolveTheme(t models.Theme) models.Theme {
	switch t {
	case models.ThemeDark:
		return models.ThemeDark
	case models.ThemeSystem:
		if s.systemTheme() == models.ThemeDark {
			return models.ThemeDark
		}
	}
	return models.ThemeLight
}

// Preferences returns the fields that survive a session reload.
func (s *Store) Preferences() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Preferences{Theme: s.st.theme, ActiveTab: s.st.activeTab}
}

// RestorePreferences applies previously persisted preferences. Invalid
// themes and blank tabs are skipped so a corrupt cache never breaks startup.
func (s *Store) RestorePreferences(p models.Preferences) {
	s.update(func(st *state) bool {
		changed := false
		if p.Theme.Valid() && p.Theme != st.theme {
			st.theme = p.Theme
			st.resolvedTheme = s.resolveTheme(p.Theme)
			changed = true
		}
		if strings.TrimSpace(p.ActiveTab) != "" && p.ActiveTab != st.activeTab {
			st.activeTab = p.ActiveTab
			changed = true
		}
		return changed
	})
}

// UpdateStoreMetrics shallow-merges patch into the store metrics.
func (s *Store) UpdateStoreMetrics(patch models.StoreMetricsPatch) models.StoreMetrics {
	var out models.StoreMetrics
	s.update(func(st *state) bool {
		patch.Apply(&st.storeMetrics)
		out = st.storeMetrics
		return !patch.Empty()
	})
	return out
}
