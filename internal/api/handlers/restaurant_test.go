package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"voice-assistant-backend/internal/api/handlers"
	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/mocks"
	"voice-assistant-backend/internal/service"
	"voice-assistant-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RestaurantHandlerTestSuite defines the test suite for RestaurantHandler
type RestaurantHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRestaurantServiceInterface
	handler     *handlers.RestaurantHandler
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RestaurantHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRestaurantServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRestaurantHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	api := suite.http.Router.Group("/api/v1")
	api.POST("/restaurants", suite.handler.CreateRestaurant)
	api.GET("/restaurants/:id", suite.handler.GetRestaurant)
}

// TearDownTest cleans up after each test
func (suite *RestaurantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RestaurantHandlerTestSuite) TestCreateRestaurant_Success() {
	phone := "+15551234567"
	expected := &service.RestaurantResponse{
		ID:           uuid.New(),
		Name:         "Luigi's Pizzeria",
		APIKey:       "api_key_abc123",
		PhoneNumber:  &phone,
		PhoneOutcome: string(service.OutcomeAssigned),
	}
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateRestaurantRequest) (*service.RestaurantResponse, error) {
			suite.Equal("Luigi's Pizzeria", req.Name)
			return expected, nil
		})

	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/restaurants",
		[]byte(`{"name": "Luigi's Pizzeria"}`), nil)

	suite.Equal(http.StatusCreated, w.Code)
	var response service.RestaurantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(expected.ID, response.ID)
	suite.Require().NotNil(response.PhoneNumber)
	suite.Equal(phone, *response.PhoneNumber)
	suite.Equal(string(service.OutcomeAssigned), response.PhoneOutcome)
}

func (suite *RestaurantHandlerTestSuite) TestCreateRestaurant_NoNumberAvailable() {
	expected := &service.RestaurantResponse{
		ID:           uuid.New(),
		Name:         "Luigi's Pizzeria",
		APIKey:       "api_key_abc123",
		PhoneNumber:  nil,
		PhoneOutcome: string(service.OutcomeUnavailable),
	}
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(expected, nil)

	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/restaurants",
		[]byte(`{"name": "Luigi's Pizzeria"}`), nil)

	suite.Equal(http.StatusCreated, w.Code)
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Nil(response["phone_number"])
	suite.Equal(string(service.OutcomeUnavailable), response["phone_outcome"])
}

func (suite *RestaurantHandlerTestSuite) TestCreateRestaurant_DuplicateAPIKey() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrRestaurantExists)

	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/restaurants",
		[]byte(`{"name": "Luigi's Pizzeria", "api_key": "taken"}`), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RestaurantHandlerTestSuite) TestCreateRestaurant_InvalidBody() {
	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/restaurants", []byte(`{not json`), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RestaurantHandlerTestSuite) TestCreateRestaurant_ValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "is required"))

	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/restaurants", []byte(`{"name": ""}`), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RestaurantHandlerTestSuite) TestGetRestaurant_Success() {
	restaurantID := uuid.New()
	phone := "+15551234567"
	suite.mockService.EXPECT().
		GetByID(restaurantID).
		Return(&service.RestaurantResponse{
			ID:          restaurantID,
			Name:        "Luigi's Pizzeria",
			APIKey:      "api_key_abc123",
			PhoneNumber: &phone,
		}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/restaurants/"+restaurantID.String(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var response service.RestaurantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(restaurantID, response.ID)
	suite.Require().NotNil(response.PhoneNumber)
	suite.Equal(phone, *response.PhoneNumber)
}

func (suite *RestaurantHandlerTestSuite) TestGetRestaurant_NotFound() {
	restaurantID := uuid.New()
	suite.mockService.EXPECT().
		GetByID(restaurantID).
		Return(nil, fmt.Errorf("get restaurant: %w", apperrors.ErrRestaurantNotFound))

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/restaurants/"+restaurantID.String(), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RestaurantHandlerTestSuite) TestGetRestaurant_InvalidUUID() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/restaurants/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestRestaurantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantHandlerTestSuite))
}
