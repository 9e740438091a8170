package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
)

// Client turns a document into raw line items.
type Client interface {
	Extract(ctx context.Context, filename string, data []byte) ([]model.ExtractedItem, error)
}

// HTTPClient implements Client via the extraction service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates extraction client bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse extraction url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("extraction url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Extract uploads the document and normalizes returned rows.
func (c *HTTPClient) Extract(ctx context.Context, filename string, data []byte) ([]model.ExtractedItem, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/extraction_api")

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: extraction request: %v", domainErrors.ErrIngestion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("extraction request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(payload)))
		return nil, fmt.Errorf("%w: extraction service returned %s", domainErrors.ErrIngestion, resp.Status)
	}

	var rows []map[string]any
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode extraction response: %v", domainErrors.ErrIngestion, err)
	}

	return Normalize(rows, c.logger), nil
}
