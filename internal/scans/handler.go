package scans

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/scans", h.create)
	rg.GET("/scans", h.list)
	rg.GET("/scans/latest", h.latest)
	rg.DELETE("/scans/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var in RecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}

	scan, err := h.Svc.Record(c.Request.Context(), middleware.UserIDFromContext(c), in)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			respond.ValidationError(c, verr.Error(), verr.Details())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record scan", nil)
		return
	}
	c.Set(middleware.ScanIDKey, scan.ID)
	respond.Created(c, NewView(scan))
}

func (h *Handler) list(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respond.ValidationError(c, "limit must be an integer", map[string]any{"field": "limit"})
			return
		}
		limit = v
	}

	items, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list scans", nil)
		return
	}
	views := make([]View, 0, len(items))
	for _, s := range items {
		views = append(views, NewView(s))
	}
	respond.Items(c, views)
}

func (h *Handler) latest(c *gin.Context) {
	scan, err := h.Svc.Latest(c.Request.Context(), middleware.UserIDFromContext(c))
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "no scans yet", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load scan", nil)
		return
	}
	c.Set(middleware.ScanIDKey, scan.ID)
	respond.OK(c, NewView(scan))
}

func (h *Handler) delete(c *gin.Context) {
	scanID := c.Param("id")
	c.Set(middleware.ScanIDKey, scanID)
	err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), scanID)
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "scan not found", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete scan", nil)
		return
	}
	respond.NoContent(c)
}
