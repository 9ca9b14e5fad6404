package utils

import (
	"strings"

	"smartstock/models"
)

var ValidUserRoles = map[models.UserRole]bool{
	models.RoleStoreManager:    true,
	models.RoleRegionalManager: true,
	models.RoleAdmin:           true,
}

// ValidateAndNormalizeRole validates and normalizes a role string.
// "store manager", "store-manager" and "STORE_MANAGER" all normalize to
// STORE_MANAGER.
func ValidateAndNormalizeRole(role string) (models.UserRole, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(role))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	r := models.UserRole(normalized)
	return r, ValidUserRoles[r]
}

// IsValidRole checks if a role is valid without returning the normalized form.
func IsValidRole(role string) bool {
	_, ok := ValidateAndNormalizeRole(role)
	return ok
}
