package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-assistant-backend/internal/cache"
	"voice-assistant-backend/internal/config"
	"voice-assistant-backend/internal/logger"
)

// KnowledgeService answers knowledge base queries for the voice assistant.
// Reads go through the query cache first; a miss fans out to the embedding
// API and the vector search under a single deadline. Writes (reindexing)
// invalidate the cache synchronously before returning, so a caller that
// reindexes and immediately queries never sees pre-reindex results.
type KnowledgeService struct {
	cache    *cache.QueryCache
	embedder EmbeddingClientInterface
	searcher SearchClientInterface
	cfg      *config.Config
}

// NewKnowledgeService creates a new knowledge service
func NewKnowledgeService(queryCache *cache.QueryCache, embedder EmbeddingClientInterface, searcher SearchClientInterface, cfg *config.Config) *KnowledgeService {
	return &KnowledgeService{
		cache:    queryCache,
		embedder: embedder,
		searcher: searcher,
		cfg:      cfg,
	}
}

// Search returns ranked snippets for a query, scoped to a restaurant and
// optional category. An empty slice means the knowledge base has nothing
// relevant, which is a normal answer.
func (s *KnowledgeService) Search(ctx context.Context, restaurantID, category, query string) ([]cache.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"restaurant_id": restaurantID,
		"category":      category,
	})

	if results, ok := s.cache.Get(restaurantID, category, query); ok {
		log.Debug("Knowledge cache hit")
		return results, nil
	}

	timeout := time.Duration(s.cfg.SearchTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	embedding, err := s.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := s.searcher.Search(ctx, restaurantID, category, embedding, s.cfg.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge base: %w", err)
	}

	s.cache.Put(restaurantID, category, query, results)
	log.WithField("results", len(results)).Debug("Knowledge search completed")
	return results, nil
}

// GenerateEmbeddings triggers reindexing of a restaurant's documents and
// drops the now-stale cache entries. The invalidation happens before the
// call returns.
func (s *KnowledgeService) GenerateEmbeddings(ctx context.Context, restaurantID, category string) (int, error) {
	chunks, err := s.embedder.RequestReindex(ctx, restaurantID, category)
	if err != nil {
		return 0, fmt.Errorf("failed to reindex documents: %w", err)
	}

	removed := s.cache.InvalidateRestaurant(restaurantID, category)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"restaurant_id":   restaurantID,
		"category":        category,
		"chunks_indexed":  chunks,
		"entries_removed": removed,
	}).Info("Knowledge base reindexed")

	return chunks, nil
}

// InvalidateCache drops cached results for a restaurant, optionally scoped
// to a category, and returns how many entries were removed
func (s *KnowledgeService) InvalidateCache(restaurantID, category string) int {
	return s.cache.InvalidateRestaurant(restaurantID, category)
}
