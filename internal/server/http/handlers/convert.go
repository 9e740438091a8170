package handlers

import (
	"encoding/json"

	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/server/http/dto"
)

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               order.ID,
		Filename:         order.Filename,
		OriginalFilename: order.OriginalFilename,
		Status:           string(order.Status),
		CreatedAt:        order.CreatedAt,
	}
}

func toLineItemResponse(item model.LineItem) dto.LineItemResponse {
	resp := dto.LineItemResponse{
		ID:              item.ID,
		OrderID:         item.OrderID,
		Position:        item.Position,
		Description:     item.Description,
		Quantity:        json.Number(item.Quantity.String()),
		UnitPrice:       json.Number(item.UnitPrice.String()),
		TotalPrice:      json.Number(item.TotalPrice.String()),
		CatalogMatchID:  item.CatalogMatchID,
		ConfidenceScore: item.Confidence,
	}
	if item.CatalogMatch != nil {
		resp.CatalogMatchData = &dto.CatalogMatchResponse{
			ID:          item.CatalogMatch.ID,
			Name:        item.CatalogMatch.Name,
			Description: item.CatalogMatch.Description,
		}
	}
	return resp
}

func toLineItemResponses(items []model.LineItem) []dto.LineItemResponse {
	resp := make([]dto.LineItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toLineItemResponse(item))
	}
	return resp
}

func toOrderDetailsResponse(details *model.OrderDetails) dto.OrderDetailsResponse {
	return dto.OrderDetailsResponse{
		Order:     toOrderResponse(details.Order),
		LineItems: toLineItemResponses(details.LineItems),
		Total:     json.Number(details.Total().StringFixed(2)),
	}
}

func toUploadResponse(details *model.OrderDetails) dto.UploadResponse {
	return dto.UploadResponse{
		OrderResponse: toOrderResponse(details.Order),
		LineItems:     toLineItemResponses(details.LineItems),
		Total:         json.Number(details.Total().StringFixed(2)),
	}
}

func toCatalogItemResponse(item model.CatalogItem) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Type:        item.Type,
		Material:    item.Material,
		Size:        item.Size,
		Length:      item.Length,
		Coating:     item.Coating,
		ThreadType:  item.ThreadType,
		Description: item.Description,
	}
}
