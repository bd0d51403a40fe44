package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"resume-screening-backend/internal/sessions"
	"resume-screening-backend/internal/shared/server/middleware"
	"resume-screening-backend/internal/shared/server/respond"
	"resume-screening-backend/internal/shared/telemetry"
	"resume-screening-backend/internal/users"
)

const minPasswordLength = 8

// Handler wires the auth HTTP endpoints to the service and session store.
type Handler struct {
	Svc        *Service
	Sessions   sessions.Store
	SessionTTL time.Duration
	Production bool
}

func NewHandler(svc *Service, store sessions.Store, ttl time.Duration, production bool) *Handler {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Handler{Svc: svc, Sessions: store, SessionTTL: ttl, Production: production}
}

// RegisterRoutes attaches the credential endpoints to the public group and
// /me to the session-protected group. limit, when non-nil, throttles the
// register and login routes.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup, limit gin.HandlerFunc) {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}
	public.POST("/register", limit, h.register)
	public.POST("/login", limit, h.login)
	public.POST("/logout", h.logout)
	protected.GET("/me", h.me)
}

type registerRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "All fields are required.")
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if req.FullName == "" || req.Email == "" || req.Username == "" || req.Password == "" || req.ConfirmPassword == "" {
		respond.Validation(c, "All fields are required.")
		return
	}
	if req.Password != req.ConfirmPassword {
		respond.Validation(c, "Passwords do not match.")
		return
	}
	// Count characters, not bytes, so multibyte passwords are measured
	// the way users see them.
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		respond.Validation(c, "Password must be at least 8 characters.")
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, users.ErrDuplicate) {
			respond.Error(c, http.StatusConflict, "conflict", "Email or username already in use.")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Server error during registration.")
		return
	}

	// Auto-login after registration.
	if !h.establishSession(c, user.ID) {
		return
	}
	respond.OK(c, gin.H{"success": true, "userId": user.ID})
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "Missing credentials.")
		return
	}

	req.UsernameOrEmail = strings.TrimSpace(req.UsernameOrEmail)
	if req.UsernameOrEmail == "" || req.Password == "" {
		respond.Validation(c, "Missing credentials.")
		return
	}

	user, err := h.Svc.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Invalid username/email or password.")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Server error during login.")
		return
	}

	if !h.establishSession(c, user.ID) {
		return
	}
	respond.OK(c, gin.H{"success": true, "userId": user.ID})
}

func (h *Handler) logout(c *gin.Context) {
	// Idempotent: succeeds whether or not a session existed.
	if token := middleware.SessionTokenFromContext(c); token != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
			telemetry.Error("session.destroy", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"error":      err.Error(),
			})
		}
	}
	h.clearSessionCookie(c)
	respond.OK(c, gin.H{"success": true})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Unauthorized(c)
		return
	}

	user, err := h.Svc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Database error")
		return
	}

	// PasswordHash is excluded by its json:"-" tag.
	respond.OK(c, gin.H{"user": user})
}

// establishSession creates a session for userID and sets the cookie. On
// failure it writes a 500 and returns false.
func (h *Handler) establishSession(c *gin.Context, userID string) bool {
	sess, err := h.Sessions.Create(c.Request.Context(), userID, h.SessionTTL)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Server error during login.")
		return false
	}
	h.setSessionCookie(c, sess.Token)
	return true
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(middleware.SessionCookieName, token, int(h.SessionTTL.Seconds()), "/", "", h.Production, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.Production, true)
}

func (h *Handler) sameSite() http.SameSite {
	if h.Production {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}
