package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"glowyze-backend/internal/shared/server/middleware"
	"glowyze-backend/internal/shared/server/respond"
	"glowyze-backend/internal/shared/validation"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, found, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}
	c.Set(middleware.SkinTypeKey, string(profile.SkinType))
	respond.OK(c, gin.H{"profile": profile, "exists": found})
}

func (h *Handler) put(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}

	profile, err := h.Svc.Update(c.Request.Context(), middleware.UserIDFromContext(c), in)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			respond.ValidationError(c, verr.Error(), verr.Details())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	c.Set(middleware.SkinTypeKey, string(profile.SkinType))
	respond.OK(c, gin.H{"profile": profile, "exists": true})
}
