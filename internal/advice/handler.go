package advice

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

// RegisterPublicRoutes attaches routes that need no identity.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/ingredients", h.ingredients)
	rg.POST("/advice/preview", h.preview)
}

// RegisterRoutes attaches routes for the authenticated caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/advice", h.forUser)
}

func (h *Handler) forUser(c *gin.Context) {
	page, err := h.Svc.ForUser(
		c.Request.Context(),
		middleware.UserIDFromContext(c),
		c.Query("lang"),
		c.GetHeader("Accept-Language"),
	)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute advice", nil)
		return
	}
	tagPage(c, page)
	respond.OK(c, page)
}

func (h *Handler) preview(c *gin.Context) {
	var in PreviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	if in.Locale == "" {
		in.Locale = c.Query("lang")
	}

	page, err := h.Svc.Preview(in, c.GetHeader("Accept-Language"))
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			respond.ValidationError(c, verr.Error(), verr.Details())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute advice", nil)
		return
	}
	tagPage(c, page)
	respond.OK(c, page)
}

func (h *Handler) ingredients(c *gin.Context) {
	locale, items := h.Svc.Ingredients(c.Query("lang"), c.GetHeader("Accept-Language"))
	c.Set(middleware.LocaleKey, string(locale))
	respond.OK(c, gin.H{"locale": locale, "items": items})
}

func tagPage(c *gin.Context, page Page) {
	c.Set(middleware.LocaleKey, string(page.Locale))
	c.Set(middleware.SkinTypeKey, string(page.SkinType))
	if page.ScanID != "" {
		c.Set(middleware.ScanIDKey, page.ScanID)
	}
}
