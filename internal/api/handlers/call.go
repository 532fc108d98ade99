package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CallHandler handles HTTP requests for call history
type CallHandler struct {
	service service.CallHistoryServiceInterface
}

// NewCallHandler creates a new call history handler
func NewCallHandler(service service.CallHistoryServiceInterface) *CallHandler {
	return &CallHandler{service: service}
}

// callRestaurantID resolves the restaurant id from the X-Restaurant-Id
// header first, then the given fallback (query param or body field)
func callRestaurantID(c *gin.Context, fallback string) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.GetHeader("X-Restaurant-Id"))
	if raw == "" {
		raw = strings.TrimSpace(fallback)
	}
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ListCalls handles GET /api/v1/calls
// @Summary List call history
// @Description List call history for a restaurant, ordered by most recent first
// @Tags calls
// @Accept json
// @Produce json
// @Param X-Restaurant-Id header string false "Restaurant UUID (alternative to query param)"
// @Param restaurant_id query string false "Restaurant UUID"
// @Param limit query int false "Maximum number of results (1-200, default 50)"
// @Success 200 {object} map[string]interface{} "Call history"
// @Failure 422 {object} ErrorResponse "restaurant_id is required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/calls [get]
func (h *CallHandler) ListCalls(c *gin.Context) {
	restaurantID, ok := callRestaurantID(c, c.Query("restaurant_id"))
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "restaurant_id is required"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	calls, err := h.service.List(restaurantID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch call history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": calls})
}

// CreateCall handles POST /api/v1/calls
// @Summary Create call record
// @Description Record a finished call. Restaurant ID priority: X-Restaurant-Id header, then the payload's restaurant_id.
// @Tags calls
// @Accept json
// @Produce json
// @Param X-Restaurant-Id header string false "Restaurant UUID (alternative to payload)"
// @Param call body service.CreateCallRequest true "Call record"
// @Success 200 {object} map[string]interface{} "Call record created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "restaurant_id is required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/calls [post]
func (h *CallHandler) CreateCall(c *gin.Context) {
	var req service.CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	restaurantID, ok := callRestaurantID(c, req.RestaurantID)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "restaurant_id is required"})
		return
	}

	id, err := h.service.Create(restaurantID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create call record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id.String()})
}
