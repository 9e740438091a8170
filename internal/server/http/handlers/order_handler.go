package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/export"
	"github.com/polkiloo/salesorders/internal/server/http/dto"
)

const uploadField = "file"

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Upload handles POST /upload.
func (h *OrderHandler) Upload(c *gin.Context) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		abortWithError(c, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "cannot read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "cannot read upload")
		return
	}

	details, err := h.facade.Upload(c.Request.Context(), filepath.Base(header.Filename), data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUploadResponse(details))
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	details, err := h.facade.Order(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// MatchAll handles POST /orders/:id/match-all.
func (h *OrderHandler) MatchAll(c *gin.Context) {
	orderID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	details, err := h.facade.MatchAll(c.Request.Context(), orderID)
	if err != nil && (details == nil || !errors.Is(err, domainErrors.ErrMatchUnavailable)) {
		writeError(c, err)
		return
	}

	resp := toOrderDetailsResponse(details)
	if err != nil {
		resp.Warning = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// Export handles GET /orders/:id/export.
func (h *OrderHandler) Export(c *gin.Context) {
	orderID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	data, name, err := h.facade.Export(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, export.ContentType+"; charset=utf-8", data)
}
