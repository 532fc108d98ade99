package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"voice-assistant-backend/internal/cache"
	"voice-assistant-backend/internal/config"
	apperrors "voice-assistant-backend/internal/errors"
)

// SearchService talks to the vector search API, running similarity search
// over a restaurant's indexed knowledge base documents.
type SearchService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewSearchService creates a new search service
func NewSearchService(cfg *config.Config) *SearchService {
	return &SearchService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type searchRequest struct {
	RestaurantID string    `json:"restaurant_id"`
	Category     string    `json:"category,omitempty"`
	Embedding    []float64 `json:"embedding"`
	Limit        int       `json:"limit"`
}

type searchResponse struct {
	Results []cache.SearchResult `json:"results"`
}

// Search runs a similarity search scoped to the restaurant and optional
// category. An empty result set is a valid answer, not an error.
func (s *SearchService) Search(ctx context.Context, restaurantID, category string, embedding []float64, limit int) ([]cache.SearchResult, error) {
	if s.cfg.SearchBaseURL == "" {
		return nil, apperrors.NewConfigurationError("search base URL is not configured")
	}
	if limit < 1 {
		limit = 1
	}

	payload, err := json.Marshal(searchRequest{
		RestaurantID: restaurantID,
		Category:     category,
		Embedding:    embedding,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	endpoint := strings.TrimRight(s.cfg.SearchBaseURL, "/") + "/search"
	body, err := s.doRequest(ctx, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("knowledge search: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return resp.Results, nil
}

// doRequest posts JSON with one retry on transport errors
func (s *SearchService) doRequest(ctx context.Context, endpoint string, payload []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if s.cfg.SearchAPIKey != "" {
			req.Header.Set("Authorization", "Bearer "+s.cfg.SearchAPIKey)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("search api status %d: %s", resp.StatusCode, string(body))
		}
		return body, nil
	}
	return nil, fmt.Errorf("search request failed: %w", lastErr)
}
