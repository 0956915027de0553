package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeeper/services/catalog"
)

// HotelsHandler exposes the read-only catalog.
type HotelsHandler struct {
	Catalog *catalog.Index
}

func NewHotelsHandler(ix *catalog.Index) *HotelsHandler {
	return &HotelsHandler{Catalog: ix}
}

// HandleList returns every hotel record: GET /hotels.
func (h *HotelsHandler) HandleList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hotels": h.Catalog.All()})
}
