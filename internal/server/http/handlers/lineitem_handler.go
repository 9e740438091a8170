package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/server/http/dto"
)

// LineItemHandler manages line item edits and matching.
type LineItemHandler struct {
	facade LineItemFacade
}

// NewLineItemHandler constructs LineItemHandler.
func NewLineItemHandler(facade LineItemFacade) *LineItemHandler {
	return &LineItemHandler{facade: facade}
}

// Update handles PUT /orders/:id/line-items/:item_id.
func (h *LineItemHandler) Update(c *gin.Context) {
	orderID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	itemID, ok := ParamID(c, "item_id")
	if !ok {
		return
	}

	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "malformed request body")
		return
	}

	patch := model.LineItemPatch{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	}
	item, err := h.facade.UpdateLineItem(c.Request.Context(), orderID, itemID, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLineItemResponse(*item))
}

// Match handles POST /orders/:id/match.
func (h *LineItemHandler) Match(c *gin.Context) {
	orderID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req dto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.ItemID <= 0 {
		abortWithError(c, http.StatusUnprocessableEntity, "item_id is required")
		return
	}

	var (
		item *model.LineItem
		err  error
	)
	if req.CatalogItemID != nil && strings.TrimSpace(*req.CatalogItemID) != "" {
		item, err = h.facade.SelectMatch(c.Request.Context(), orderID, req.ItemID, strings.TrimSpace(*req.CatalogItemID))
	} else {
		item, err = h.facade.RequestMatch(c.Request.Context(), orderID, req.ItemID)
	}

	if err != nil {
		if errors.Is(err, domainErrors.ErrMatchUnavailable) && item != nil {
			resp := toLineItemResponse(*item)
			resp.Warning = err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLineItemResponse(*item))
}

// ClearMatch handles DELETE /orders/:id/line-items/:item_id/match.
func (h *LineItemHandler) ClearMatch(c *gin.Context) {
	orderID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	itemID, ok := ParamID(c, "item_id")
	if !ok {
		return
	}

	item, err := h.facade.ClearMatch(c.Request.Context(), orderID, itemID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLineItemResponse(*item))
}
