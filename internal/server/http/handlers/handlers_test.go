package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
	"github.com/polkiloo/salesorders/internal/server/http/dto"
	"github.com/polkiloo/salesorders/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/salesorders/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func multipartBody(t *testing.T, field, filename string, data []byte) ([]byte, map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write(data)
	_ = w.Close()
	return buf.Bytes(), map[string]string{"Content-Type": w.FormDataContentType()}
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("expected json error body, got %q", resp.Body.String())
	}
	return payload.Error
}

func sampleDetails() *model.OrderDetails {
	bolt := model.LineItem{ID: 1, OrderID: 7, Position: 0, Description: "Bolt M6", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.RequireFromString("0.50")}
	bolt.Recalculate()
	bolt.SetMatch("bolt_m6", model.CatalogMatch{ID: "bolt_m6", Name: "Bolt M6", Description: "Hex bolt"}, 0.9)
	nut := model.LineItem{ID: 2, OrderID: 7, Position: 1, Description: "Nut M6", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.RequireFromString("0.25")}
	nut.Recalculate()
	return &model.OrderDetails{
		Order: model.Order{
			ID:               7,
			Filename:         "stored.pdf",
			OriginalFilename: "order.pdf",
			Status:           model.OrderStatusProcessed,
			CreatedAt:        time.Unix(0, 0).UTC(),
		},
		LineItems: []model.LineItem{bolt, nut},
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domainErrors.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: bad", domainErrors.ErrValidation), http.StatusUnprocessableEntity},
		{domainErrors.ErrUnsupportedFormat, http.StatusBadRequest},
		{domainErrors.ErrConflict, http.StatusConflict},
		{domainErrors.ErrAlreadyExists, http.StatusConflict},
		{domainErrors.ErrIngestion, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got)
		}
	}
}

func TestParamID(t *testing.T) {
	var got int64
	handler := func(c *gin.Context) {
		id, ok := ParamID(c, "id")
		if !ok {
			return
		}
		got = id
		c.Status(http.StatusOK)
	}

	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/12", handler, nil, nil)
	if resp.Code != http.StatusOK || got != 12 {
		t.Fatalf("expected id 12, got %d (%d)", got, resp.Code)
	}

	for _, path := range []string{"/orders/abc", "/orders/0", "/orders/-3"} {
		resp = performRequest(t, http.MethodGet, "/orders/:id", path, handler, nil, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, resp.Code)
		}
	}
}

func TestOrderHandlerList(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersFn: func(context.Context) ([]model.Order, error) {
		return []model.Order{{ID: 2, Status: model.OrderStatusExported}, {ID: 1, Status: model.OrderStatusProcessed}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", handler.List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != 2 || orders[0].Status != "exported" {
		t.Fatalf("unexpected orders %+v", orders)
	}

	empty := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersFn: func(context.Context) ([]model.Order, error) { return nil, nil }})
	resp = performRequest(t, http.MethodGet, "/orders", "/orders", empty.List, nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %q", resp.Code, resp.Body.String())
	}

	failing := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersFn: func(context.Context) ([]model.Order, error) { return nil, errors.New("db") }})
	resp = performRequest(t, http.MethodGet, "/orders", "/orders", failing.List, nil, nil)
	if resp.Code != http.StatusInternalServerError || decodeError(t, resp) == "" {
		t.Fatalf("expected 500 with error body, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(_ context.Context, id int64) (*model.OrderDetails, error) {
		if id != 7 {
			return nil, domainErrors.ErrNotFound
		}
		return sampleDetails(), nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/7", handler.Get, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["total"]) != "7.50" {
		t.Fatalf("expected total 7.50, got %s", raw["total"])
	}

	var details dto.OrderDetailsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &details); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if details.Order.OriginalFilename != "order.pdf" || len(details.LineItems) != 2 {
		t.Fatalf("unexpected details %+v", details)
	}
	bolt := details.LineItems[0]
	if bolt.TotalPrice.String() != "5" || bolt.CatalogMatchData == nil || bolt.CatalogMatchData.Name != "Bolt M6" || bolt.ConfidenceScore != 0.9 {
		t.Fatalf("unexpected bolt %+v", bolt)
	}
	if nut := details.LineItems[1]; nut.CatalogMatchID != nil || nut.CatalogMatchData != nil {
		t.Fatalf("expected unmatched nut, got %+v", nut)
	}

	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/8", handler.Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOrderHandlerUpload(t *testing.T) {
	var gotName string
	var gotData []byte
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UploadFn: func(_ context.Context, filename string, data []byte) (*model.OrderDetails, error) {
		gotName, gotData = filename, data
		return sampleDetails(), nil
	}})

	body, headers := multipartBody(t, "file", "../../order.pdf", []byte("%PDF-1.4 data %%EOF"))
	resp := performRequest(t, http.MethodPost, "/upload", "/upload", handler.Upload, body, headers)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if gotName != "order.pdf" || string(gotData) != "%PDF-1.4 data %%EOF" {
		t.Fatalf("unexpected upload passed to facade: %q %q", gotName, gotData)
	}

	var upload dto.UploadResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &upload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if upload.ID != 7 || upload.Filename != "stored.pdf" || len(upload.LineItems) != 2 || upload.Total.String() != "7.50" {
		t.Fatalf("unexpected upload response %+v", upload)
	}
}

func TestOrderHandlerUploadFailures(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		err    error
		status int
	}{
		{"missing file", "document", nil, http.StatusBadRequest},
		{"not a pdf", "file", fmt.Errorf("%w: text", domainErrors.ErrUnsupportedFormat), http.StatusBadRequest},
		{"ingestion", "file", fmt.Errorf("%w: extraction down", domainErrors.ErrIngestion), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{UploadFn: func(context.Context, string, []byte) (*model.OrderDetails, error) {
				return nil, tc.err
			}})
			body, headers := multipartBody(t, tc.field, "a.pdf", []byte("data"))
			resp := performRequest(t, http.MethodPost, "/upload", "/upload", handler.Upload, body, headers)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
			if decodeError(t, resp) == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestOrderHandlerUploadTooLarge(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UploadFn: func(context.Context, string, []byte) (*model.OrderDetails, error) {
		t.Fatal("facade must not be called")
		return nil, nil
	}})
	router := gin.New()
	router.Use(middleware.LimitRequestBody(64))
	router.POST("/upload", handler.Upload)

	body, headers := multipartBody(t, "file", "a.pdf", bytes.Repeat([]byte("x"), 1024))
	req := httptest.NewRequest(http.MethodPost, "/upload", io.NopCloser(bytes.NewReader(body)))
	req.ContentLength = -1
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}

func TestOrderHandlerExport(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{ExportFn: func(_ context.Context, id int64) ([]byte, string, error) {
		if id != 7 {
			return nil, "", domainErrors.ErrNotFound
		}
		return []byte("Description\nBolt\n"), "order_7.csv", nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders/:id/export", "/orders/7/export", handler.Export, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="order_7.csv"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if resp.Body.String() != "Description\nBolt\n" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/orders/:id/export", "/orders/9/export", handler.Export, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOrderHandlerMatchAll(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{MatchAllFn: func(_ context.Context, id int64) (*model.OrderDetails, error) {
		return sampleDetails(), fmt.Errorf("%w: matcher down", domainErrors.ErrMatchUnavailable)
	}})
	resp := performRequest(t, http.MethodPost, "/orders/:id/match-all", "/orders/7/match-all", handler.MatchAll, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var details dto.OrderDetailsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &details); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if details.Warning == "" {
		t.Fatal("expected warning")
	}

	missing := NewOrderHandler(testhelpers.OrderFacadeStub{MatchAllFn: func(context.Context, int64) (*model.OrderDetails, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp = performRequest(t, http.MethodPost, "/orders/:id/match-all", "/orders/7/match-all", missing.MatchAll, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestLineItemHandlerUpdate(t *testing.T) {
	var gotPatch model.LineItemPatch
	handler := NewLineItemHandler(testhelpers.LineItemFacadeStub{UpdateFn: func(_ context.Context, orderID, itemID int64, patch model.LineItemPatch) (*model.LineItem, error) {
		gotPatch = patch
		item := &model.LineItem{ID: itemID, OrderID: orderID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.RequireFromString("0.50")}
		patch.Apply(item)
		item.Recalculate()
		return item, nil
	}})

	body := []byte(`{"quantity": 4, "total_price": 999, "extra": true}`)
	resp := performRequest(t, http.MethodPut, "/orders/:id/line-items/:item_id", "/orders/1/line-items/2", handler.Update, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if gotPatch.Quantity == nil || gotPatch.Quantity.String() != "4" || gotPatch.UnitPrice != nil || gotPatch.Description != nil {
		t.Fatalf("unexpected patch %+v", gotPatch)
	}
	var item dto.LineItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.TotalPrice.String() != "2" {
		t.Fatalf("expected server computed total 2, got %s", item.TotalPrice)
	}

	body = []byte(`{"unit_price": "0.125", "description": "Bolt M8"}`)
	resp = performRequest(t, http.MethodPut, "/orders/:id/line-items/:item_id", "/orders/1/line-items/2", handler.Update, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for string price, got %d", resp.Code)
	}
	if gotPatch.UnitPrice == nil || gotPatch.UnitPrice.String() != "0.125" || *gotPatch.Description != "Bolt M8" {
		t.Fatalf("unexpected patch %+v", gotPatch)
	}
}

func TestLineItemHandlerUpdateFailures(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   []byte
		err    error
		status int
	}{
		{"malformed json", "/orders/1/line-items/2", []byte(`{"quantity":`), nil, http.StatusBadRequest},
		{"non numeric quantity", "/orders/1/line-items/2", []byte(`{"quantity": "many"}`), nil, http.StatusBadRequest},
		{"bad item id", "/orders/1/line-items/x", []byte(`{}`), nil, http.StatusBadRequest},
		{"no editable fields", "/orders/1/line-items/2", []byte(`{"total_price": 1}`), fmt.Errorf("%w: empty", domainErrors.ErrValidation), http.StatusUnprocessableEntity},
		{"missing item", "/orders/1/line-items/2", []byte(`{"quantity": 1}`), domainErrors.ErrNotFound, http.StatusNotFound},
		{"conflict", "/orders/1/line-items/2", []byte(`{"quantity": 1}`), fmt.Errorf("%w: deadlock", domainErrors.ErrConflict), http.StatusConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewLineItemHandler(testhelpers.LineItemFacadeStub{UpdateFn: func(context.Context, int64, int64, model.LineItemPatch) (*model.LineItem, error) {
				if tc.err == nil {
					t.Fatal("facade must not be called")
				}
				return nil, tc.err
			}})
			resp := performRequest(t, http.MethodPut, "/orders/:id/line-items/:item_id", tc.path, handler.Update, tc.body, jsonHeaders)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
			if decodeError(t, resp) == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestLineItemHandlerMatch(t *testing.T) {
	var selected string
	handler := NewLineItemHandler(testhelpers.LineItemFacadeStub{
		SelectMatchFn: func(_ context.Context, orderID, itemID int64, catalogItemID string) (*model.LineItem, error) {
			selected = catalogItemID
			if catalogItemID == "missing" {
				return nil, fmt.Errorf("%w: unknown", domainErrors.ErrValidation)
			}
			item := &model.LineItem{ID: itemID, OrderID: orderID}
			item.SetMatch(catalogItemID, model.CatalogMatch{ID: catalogItemID, Name: "Nut"}, 1)
			return item, nil
		},
		RequestMatchFn: func(_ context.Context, orderID, itemID int64) (*model.LineItem, error) {
			if itemID == 404 {
				return nil, domainErrors.ErrNotFound
			}
			return &model.LineItem{ID: itemID, OrderID: orderID}, fmt.Errorf("%w: timeout", domainErrors.ErrMatchUnavailable)
		},
	})

	resp := performRequest(t, http.MethodPost, "/orders/:id/match", "/orders/1/match", handler.Match, []byte(`{"item_id": 2, "catalog_item_id": " nut_m6 "}`), jsonHeaders)
	if resp.Code != http.StatusOK || selected != "nut_m6" {
		t.Fatalf("expected manual selection, got %d %q", resp.Code, selected)
	}
	var item dto.LineItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.ConfidenceScore != 1 || item.Warning != "" {
		t.Fatalf("unexpected item %+v", item)
	}

	resp = performRequest(t, http.MethodPost, "/orders/:id/match", "/orders/1/match", handler.Match, []byte(`{"item_id": 2}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with warning, got %d", resp.Code)
	}
	item = dto.LineItemResponse{}
	if err := json.Unmarshal(resp.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.Warning == "" || item.CatalogMatchID != nil {
		t.Fatalf("expected unchanged item with warning, got %+v", item)
	}

	cases := []struct {
		body   string
		status int
	}{
		{`{"item_id": 404}`, http.StatusNotFound},
		{`{"item_id": 2, "catalog_item_id": "missing"}`, http.StatusUnprocessableEntity},
		{`{}`, http.StatusUnprocessableEntity},
		{`not json`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		resp = performRequest(t, http.MethodPost, "/orders/:id/match", "/orders/1/match", handler.Match, []byte(tc.body), jsonHeaders)
		if resp.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.body, tc.status, resp.Code)
		}
	}
}

func TestLineItemHandlerClearMatch(t *testing.T) {
	handler := NewLineItemHandler(testhelpers.LineItemFacadeStub{ClearMatchFn: func(_ context.Context, orderID, itemID int64) (*model.LineItem, error) {
		if itemID == 9 {
			return nil, domainErrors.ErrNotFound
		}
		return &model.LineItem{ID: itemID, OrderID: orderID}, nil
	}})

	resp := performRequest(t, http.MethodDelete, "/orders/:id/line-items/:item_id/match", "/orders/1/line-items/2/match", handler.ClearMatch, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var item dto.LineItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.CatalogMatchID != nil || item.CatalogMatchData != nil || item.ConfidenceScore != 0 {
		t.Fatalf("expected cleared item, got %+v", item)
	}

	resp = performRequest(t, http.MethodDelete, "/orders/:id/line-items/:item_id/match", "/orders/1/line-items/9/match", handler.ClearMatch, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCatalogHandlerList(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{Items: []model.CatalogItem{
		{ID: "Bolt_Steel", Name: "Bolt Steel", Type: "Bolt", Material: "Steel", ThreadType: "Coarse"},
	}})
	resp := performRequest(t, http.MethodGet, "/catalog", "/catalog", handler.List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var items []dto.CatalogItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].ThreadType != "Coarse" || items[0].ID != "Bolt_Steel" {
		t.Fatalf("unexpected catalog %+v", items)
	}

	empty := NewCatalogHandler(testhelpers.CatalogFacadeStub{})
	resp = performRequest(t, http.MethodGet, "/catalog", "/catalog", empty.List, nil, nil)
	if resp.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %q", resp.Body.String())
	}
}

func TestFileHandlerGet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stored.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	handler := NewFileHandler(testhelpers.FileFacadeStub{Paths: map[string]string{"stored.pdf": path}})

	resp := performRequest(t, http.MethodGet, "/files/:filename", "/files/stored.pdf", handler.Get, nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "%PDF-1.4" {
		t.Fatalf("expected stored file, got %d %q", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/files/:filename", "/files/other.pdf", handler.Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestHealthHandlerCheck(t *testing.T) {
	health := &testhelpers.HealthCheckerStub{}
	handler := NewHealthHandler(health)

	resp := performRequest(t, http.MethodGet, "/healthz", "/healthz", handler.Check, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	health.Err = errors.New("db down")
	resp = performRequest(t, http.MethodGet, "/healthz", "/healthz", handler.Check, nil, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
