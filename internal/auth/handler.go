package auth

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/quizgen/internal/config"
)

type Handler struct {
	ttl    time.Duration
	secure bool
}

// NewHandler issues tokens valid for ttl. Secure cookies are only set in
// production, where the frontend is served over HTTPS from another origin.
func NewHandler(ttl time.Duration, secure bool) *Handler {
	return &Handler{ttl: ttl, secure: secure}
}

type GuestResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Guest godoc
// @Summary      Start a guest session
// @Description  Issues a guest token and sets it as the jwt cookie
// @Tags         auth
// @Produce      json
// @Success      201 {object} GuestResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /api/auth/guest [post]
func (h *Handler) Guest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID := uuid.New().String()
	token, err := GenerateJWT(userID, RoleGuest, h.ttl)
	if err != nil {
		log.WithError(err).Error("Failed to issue guest token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	expiresAt := time.Now().Add(h.ttl).UTC()
	http.SetCookie(w, h.cookie(token, int(h.ttl.Seconds())))

	log.WithField("user_id", userID).Info("Guest session created")
	config.JSON(w, http.StatusCreated, GuestResponse{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	})
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie("", -1))

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

func (h *Handler) cookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.secure {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
