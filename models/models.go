package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- UI / Session ---

// Theme is the dashboard colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// themeCycle is the fixed order ToggleTheme walks through.
var themeCycle = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// Next returns the theme that follows t in the light -> dark -> system cycle.
// Unknown values restart the cycle at dark, as if t were light.
func (t Theme) Next() Theme {
	for i, candidate := range themeCycle {
		if candidate == t {
			return themeCycle[(i+1)%len(themeCycle)]
		}
	}
	return ThemeDark
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Preferences is the subset of UI state that survives a session reload.
type Preferences struct {
	Theme     Theme  `json:"theme"`
	ActiveTab string `json:"activeTab"`
}
