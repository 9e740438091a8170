package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
)

// Client proposes catalog matches for free-text descriptions.
type Client interface {
	MatchBatch(ctx context.Context, queries []string) (map[string][]model.MatchCandidate, error)
}

// HTTPClient implements Client via the matching service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type batchRequest struct {
	Queries []string `json:"queries"`
}

type candidate struct {
	Match string  `json:"match"`
	Score float64 `json:"score"`
}

type batchResponse struct {
	Results map[string][]candidate `json:"results"`
}

// NewHTTPClient creates matching client bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse matching url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("matching url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// MatchBatch returns candidates per query, best first. Any failure is reported as ErrMatchUnavailable.
func (c *HTTPClient) MatchBatch(ctx context.Context, queries []string) (map[string][]model.MatchCandidate, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/match/batch")

	payload, err := json.Marshal(batchRequest{Queries: queries})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: matching timed out", domainErrors.ErrMatchUnavailable)
		}
		return nil, fmt.Errorf("%w: matching request: %v", domainErrors.ErrMatchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("matching request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: matching service returned %s", domainErrors.ErrMatchUnavailable, resp.Status)
	}

	var data batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decode matching response: %v", domainErrors.ErrMatchUnavailable, err)
	}

	result := make(map[string][]model.MatchCandidate, len(data.Results))
	for query, candidates := range data.Results {
		converted := make([]model.MatchCandidate, 0, len(candidates))
		for _, cand := range candidates {
			if cand.Match == "" {
				continue
			}
			converted = append(converted, model.MatchCandidate{Match: cand.Match, Score: cand.Score})
		}
		result[query] = converted
	}
	return result, nil
}
