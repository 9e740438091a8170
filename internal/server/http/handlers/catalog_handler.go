package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/salesorders/internal/server/http/dto"
)

// CatalogHandler serves the product catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /catalog.
func (h *CatalogHandler) List(c *gin.Context) {
	items := h.facade.Catalog()
	resp := make([]dto.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toCatalogItemResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}
