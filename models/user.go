package models

import "time"

// UserRole is the role of the signed-in dashboard user.
type UserRole string

const (
	RoleStoreManager    UserRole = "STORE_MANAGER"
	RoleRegionalManager UserRole = "REGIONAL_MANAGER"
	RoleAdmin           UserRole = "ADMIN"
)

// UserPreferences holds the profile-level settings shown on the account page.
type UserPreferences struct {
	Theme         Theme  `json:"theme" yaml:"theme"`
	Language      string `json:"language" yaml:"language"`
	Notifications bool   `json:"notifications" yaml:"notifications"`
}

// UserProfile represents the store manager using the dashboard.
type UserProfile struct {
	ID          string          `json:"id" yaml:"id" validate:"required"`
	Name        string          `json:"name" yaml:"name"`
	Role        UserRole        `json:"role" yaml:"role"`
	Avatar      *string         `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	StoreID     *string         `json:"storeId,omitempty" yaml:"storeId,omitempty"`
	LastLogin   time.Time       `json:"lastLogin" yaml:"lastLogin"`
	Preferences UserPreferences `json:"preferences" yaml:"preferences"`
}

// Clone returns a deep copy of u.
func (u UserProfile) Clone() UserProfile {
	out := u
	out.Avatar = clonePtr(u.Avatar)
	out.StoreID = clonePtr(u.StoreID)
	return out
}
