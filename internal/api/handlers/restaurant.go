package handlers

import (
	"errors"
	"net/http"

	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RestaurantHandler handles HTTP requests for restaurants
type RestaurantHandler struct {
	service service.RestaurantServiceInterface
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(service service.RestaurantServiceInterface) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// CreateRestaurant handles POST /api/v1/restaurants
// @Summary Create a new restaurant
// @Description Create a restaurant and, unless disabled, assign it a phone number. The response carries the assigned number (nullable) and the allocation outcome; creation succeeds even when allocation does not.
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body service.CreateRestaurantRequest true "Restaurant data"
// @Success 201 {object} service.RestaurantResponse "Successfully created restaurant"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Restaurant already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req service.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	restaurant, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRestaurantExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// GetRestaurant handles GET /api/v1/restaurants/:id
// @Summary Get restaurant by ID
// @Description Get a specific restaurant by its UUID, including its assigned phone number when one exists
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID (UUID)"
// @Success 200 {object} service.RestaurantResponse "Successfully retrieved restaurant"
// @Failure 400 {object} map[string]interface{} "Invalid restaurant ID"
// @Failure 404 {object} map[string]interface{} "Restaurant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/restaurants/{id} [get]
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID: invalid UUID format"})
		return
	}

	restaurant, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get restaurant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}
