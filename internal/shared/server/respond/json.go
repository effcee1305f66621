package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List is the envelope for collection endpoints.
type List[T any] struct {
	Items []T `json:"items"`
}

func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created answers a POST that stored a new resource.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// Items writes a list envelope. A nil slice is sent as [].
func Items[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, List[T]{Items: items})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
