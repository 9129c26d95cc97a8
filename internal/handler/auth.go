package handler

import (
	"net/http"

	"github.com/JoakoBallesteros/workforce-staffing/internal/auth"
)

// AuthHandler issues JWTs for the dev-mode login bypass. Real credential
// verification against an identity provider is an explicit Non-goal; this
// mirrors the reference system's own dev-login shortcut rather than adding
// one the engine has no use for.
type AuthHandler struct {
	authConfig *auth.Config
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authConfig *auth.Config, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{authConfig: authConfig, jwtManager: jwtManager}
}

// DevLogin issues a JWT for a fixed dev identity.
// GET /api/v1/auth/dev/login?role=admin|user
func (h *AuthHandler) DevLogin(w http.ResponseWriter, r *http.Request) {
	if !h.authConfig.IsDevMode() {
		respondError(w, http.StatusForbidden, "dev login is not available outside dev mode")
		return
	}

	role := r.URL.Query().Get("role")
	if role == "" {
		role = "user"
	}

	devUser, ok := auth.GetDevUser(role)
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":       "bad_request",
			"message":     "invalid role",
			"valid_roles": auth.ValidDevRoles(),
		})
		return
	}

	token, err := h.jwtManager.Generate(devUser.ID, devUser.Email, devUser.DisplayName, devUser.Role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.authConfig.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.authConfig.JWTExpiry.Seconds()),
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  devUser,
	})
}
