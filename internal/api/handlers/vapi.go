package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"voice-assistant-backend/internal/logger"
	"voice-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VapiHandler handles the webhooks the voice platform calls into: the
// assistant-request routing hook, function-tool knowledge queries, and the
// cache/embedding maintenance endpoints
type VapiHandler struct {
	routing   service.CallRoutingServiceInterface
	knowledge service.KnowledgeServiceInterface
}

// NewVapiHandler creates a new Vapi webhook handler
func NewVapiHandler(routing service.CallRoutingServiceInterface, knowledge service.KnowledgeServiceInterface) *VapiHandler {
	return &VapiHandler{routing: routing, knowledge: knowledge}
}

// CacheInvalidateRequest is the body for POST /vapi/cache/invalidate
type CacheInvalidateRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	Category     string `json:"category"`
}

// GenerateEmbeddingsRequest is the body for POST /vapi/embeddings/generate
type GenerateEmbeddingsRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	Category     string `json:"category"`
}

// AssistantRequest handles POST /vapi/assistant-request
// @Summary Vapi assistant request
// @Description Server URL hook called when a call comes in. Resolves the called number to a restaurant and returns it in metadata for subsequent tool calls. Always answers 200; an unmapped number yields an empty object.
// @Tags vapi
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Restaurant metadata, or empty object when the number is not mapped"
// @Router /vapi/assistant-request [post]
func (h *VapiHandler) AssistantRequest(c *gin.Context) {
	var req vapiWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed payloads still get an empty answer: the call must
		// proceed without tenant metadata rather than fail
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	phoneNumber := req.extractPhoneNumber()
	if phoneNumber == "" {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	restaurantID, err := h.routing.ResolveRestaurant(phoneNumber)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metadata": gin.H{
			"restaurant_id": restaurantID.String(),
			"phoneNumber":   phoneNumber,
		},
	})
}

// KnowledgeBase handles POST /vapi/knowledge-base
// @Summary Vapi knowledge base tool call
// @Description Main webhook for Function Tool calls. Runs similarity search over the restaurant's knowledge base and returns a Vapi tool result for speech synthesis.
// @Tags vapi
// @Accept json
// @Produce json
// @Param X-Restaurant-Id header string false "Restaurant UUID (can also come from metadata or the call's phone number)"
// @Success 200 {object} map[string]interface{} "Tool result with search results"
// @Failure 422 {object} ErrorResponse "Missing query, toolCallId or restaurant id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vapi/knowledge-base [post]
func (h *VapiHandler) KnowledgeBase(c *gin.Context) {
	var req vapiWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	query := req.extractQuery()
	if query == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Missing query parameter"})
		return
	}

	toolCallID := req.extractToolCallID()
	if toolCallID == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Missing toolCallId"})
		return
	}

	restaurantID := h.resolveRestaurantID(c, &req)
	if restaurantID == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "restaurant_id is required. Provide via X-Restaurant-Id header, query param, metadata.restaurant_id, or ensure the phone number is in call metadata.",
		})
		return
	}

	category := toolCategories[req.extractToolName()]

	results, err := h.knowledge.Search(c.Request.Context(), restaurantID, category, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			// A slow knowledge base must degrade to a spoken retry
			// message, never a 5xx back to the voice platform
			c.JSON(http.StatusOK, buildNoResult(toolCallID, category,
				"I'm experiencing a delay retrieving that information. Please try again in a moment."))
			return
		}
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error("Knowledge base search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search knowledge base"})
		return
	}

	if len(results) == 0 {
		c.JSON(http.StatusOK, buildNoResult(toolCallID, category, ""))
		return
	}

	snippets := make([]string, 0, 3)
	for _, doc := range results {
		if len(snippets) == 3 {
			break
		}
		snippets = append(snippets, doc.Content)
	}

	c.JSON(http.StatusOK, buildToolResultWithItems(
		toolCallID,
		strings.Join(snippets, "\n\n"),
		buildStructuredItems(results, category),
	))
}

// resolveRestaurantID tries, in order: the X-Restaurant-Id header, the
// restaurant_id query param, request metadata, and finally the called phone
// number via the directory
func (h *VapiHandler) resolveRestaurantID(c *gin.Context, req *vapiWebhookRequest) string {
	if id := strings.TrimSpace(c.GetHeader("X-Restaurant-Id")); id != "" {
		return id
	}
	if id := strings.TrimSpace(c.Query("restaurant_id")); id != "" {
		return id
	}
	if id := req.extractRestaurantID(); id != "" {
		return id
	}

	phoneNumber := req.extractPhoneNumber()
	if phoneNumber == "" {
		return ""
	}
	restaurantID, err := h.routing.ResolveRestaurant(phoneNumber)
	if err != nil {
		return ""
	}
	return restaurantID.String()
}

// InvalidateCache handles POST /vapi/cache/invalidate
// @Summary Invalidate cache
// @Description Drop cached knowledge search results for a restaurant, optionally scoped to a category
// @Tags vapi
// @Accept json
// @Produce json
// @Param request body CacheInvalidateRequest true "Invalidation target"
// @Success 200 {object} map[string]interface{} "Cache invalidated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /vapi/cache/invalidate [post]
func (h *VapiHandler) InvalidateCache(c *gin.Context) {
	var req CacheInvalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	removed := h.knowledge.InvalidateCache(req.RestaurantID, req.Category)
	c.JSON(http.StatusOK, gin.H{"success": true, "entries_removed": removed})
}

// GenerateEmbeddings handles POST /vapi/embeddings/generate
// @Summary Generate embeddings
// @Description Reindex a restaurant's knowledge base documents and invalidate the affected cache entries
// @Tags vapi
// @Accept json
// @Produce json
// @Param request body GenerateEmbeddingsRequest true "Reindex target"
// @Success 200 {object} map[string]interface{} "Embeddings generated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Failed to generate embeddings"
// @Router /vapi/embeddings/generate [post]
func (h *VapiHandler) GenerateEmbeddings(c *gin.Context) {
	var req GenerateEmbeddingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	chunks, err := h.knowledge.GenerateEmbeddings(c.Request.Context(), req.RestaurantID, req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate embeddings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "chunks_indexed": chunks})
}
