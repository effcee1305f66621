package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glowyze-backend/internal/shared/server/middleware"
	"glowyze-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

type meResponse struct {
	User
	Guest bool `json:"guest"`
}

// me returns the caller's identity. Guests get their guest id only.
func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}
	if middleware.IsGuest(c) {
		respond.OK(c, meResponse{User: User{ID: userID}, Guest: true})
		return
	}
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}

	user, err := h.Svc.Resolve(c.Request.Context(), userID, User{
		Email:   middleware.UserEmailFromContext(c),
		Name:    middleware.UserNameFromContext(c),
		Picture: middleware.UserPictureFromContext(c),
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}
	respond.OK(c, meResponse{User: user})
}
