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

	"voice-assistant-backend/internal/config"
	apperrors "voice-assistant-backend/internal/errors"
)

// EmbeddingService talks to the embedding API: turning query text into a
// vector for similarity search, and triggering reindexing of a restaurant's
// knowledge base documents.
type EmbeddingService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewEmbeddingService creates a new embedding service
func NewEmbeddingService(cfg *config.Config) *EmbeddingService {
	return &EmbeddingService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

type reindexRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Category     string `json:"category,omitempty"`
}

type reindexResponse struct {
	ChunksIndexed int `json:"chunks_indexed"`
}

// GenerateEmbedding converts text into an embedding vector
func (s *EmbeddingService) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	if s.cfg.EmbeddingBaseURL == "" {
		return nil, apperrors.NewConfigurationError("embedding base URL is not configured")
	}

	payload, err := json.Marshal(embeddingRequest{Model: s.cfg.EmbeddingModel, Input: text})
	if err != nil {
		return nil, fmt.Errorf("encode embedding request: %w", err)
	}

	endpoint := strings.TrimRight(s.cfg.EmbeddingBaseURL, "/") + "/embeddings"
	body, err := s.doRequest(ctx, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("generate embedding: %w", err)
	}

	var resp embeddingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding response contained no vector")
	}
	return resp.Data[0].Embedding, nil
}

// RequestReindex asks the embedding backend to regenerate embeddings for a
// restaurant's documents, optionally scoped to a category. It returns the
// number of chunks indexed.
func (s *EmbeddingService) RequestReindex(ctx context.Context, restaurantID, category string) (int, error) {
	if s.cfg.EmbeddingBaseURL == "" {
		return 0, apperrors.NewConfigurationError("embedding base URL is not configured")
	}

	payload, err := json.Marshal(reindexRequest{RestaurantID: restaurantID, Category: category})
	if err != nil {
		return 0, fmt.Errorf("encode reindex request: %w", err)
	}

	endpoint := strings.TrimRight(s.cfg.EmbeddingBaseURL, "/") + "/reindex"
	body, err := s.doRequest(ctx, endpoint, payload)
	if err != nil {
		return 0, fmt.Errorf("request reindex: %w", err)
	}

	var resp reindexResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decode reindex response: %w", err)
	}
	return resp.ChunksIndexed, nil
}

// doRequest posts JSON with one retry on transport errors
func (s *EmbeddingService) doRequest(ctx context.Context, endpoint string, payload []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if s.cfg.EmbeddingAPIKey != "" {
			req.Header.Set("Authorization", "Bearer "+s.cfg.EmbeddingAPIKey)
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
			return nil, fmt.Errorf("embedding api status %d: %s", resp.StatusCode, string(body))
		}
		return body, nil
	}
	return nil, fmt.Errorf("embedding request failed: %w", lastErr)
}
