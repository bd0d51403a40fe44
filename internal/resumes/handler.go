package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-screening-backend/internal/shared/server/middleware"
	"resume-screening-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to a session-protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
}

type createRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Summary string `json:"summary"`
	Skills  string `json:"skills"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Unauthorized(c)
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "name and email are required")
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Summary: req.Summary,
		Skills:  req.Skills,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Validation(c, err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to create resume")
		return
	}

	respond.OK(c, gin.H{"success": true, "resume": resume})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Unauthorized(c)
		return
	}

	list, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to list resumes")
		return
	}

	respond.OK(c, gin.H{"resumes": list})
}
