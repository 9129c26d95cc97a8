package auth

import "github.com/google/uuid"

// DevUser is a predefined development-mode identity: no credential store,
// no per-tenant seeding, just a fixed admin/user pair to unblock local use
// of the HTTP surface without standing up a real identity provider.
type DevUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

// DevUsers maps role name to its fixed dev identity. The UUIDs are
// deterministic so tokens stay stable across restarts.
var DevUsers = map[string]DevUser{
	"admin": {
		ID:          uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Email:       "admin@dev.local",
		DisplayName: "Dev Admin",
		Role:        "admin",
	},
	"user": {
		ID:          uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		Email:       "user@dev.local",
		DisplayName: "Dev User",
		Role:        "user",
	},
}

// GetDevUser returns a dev user by role.
func GetDevUser(role string) (DevUser, bool) {
	user, ok := DevUsers[role]
	return user, ok
}

// ValidDevRoles returns all valid dev role names.
func ValidDevRoles() []string {
	return []string{"admin", "user"}
}
