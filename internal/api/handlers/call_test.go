package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"voice-assistant-backend/internal/api/handlers"
	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/mocks"
	"voice-assistant-backend/internal/service"
	"voice-assistant-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CallHandlerTestSuite defines the test suite for CallHandler
type CallHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCallHistoryServiceInterface
	handler     *handlers.CallHandler
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CallHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCallHistoryServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCallHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	api := suite.http.Router.Group("/api/v1")
	api.GET("/calls", suite.handler.ListCalls)
	api.POST("/calls", suite.handler.CreateCall)
}

// TearDownTest cleans up after each test
func (suite *CallHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CallHandlerTestSuite) TestListCalls_ByQueryParam() {
	restaurantID := uuid.New()
	callID := uuid.New()
	suite.mockService.EXPECT().
		List(restaurantID, 0).
		Return([]service.CallResponse{{ID: callID, Caller: "+15551234567", Outcome: "completed"}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/calls?restaurant_id="+restaurantID.String(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].([]interface{})
	suite.Require().Len(data, 1)
	first := data[0].(map[string]interface{})
	suite.Equal(callID.String(), first["id"])
	suite.Equal("completed", first["outcome"])
}

func (suite *CallHandlerTestSuite) TestListCalls_HeaderWinsOverQueryParam() {
	headerID := uuid.New()
	suite.mockService.EXPECT().
		List(headerID, 0).
		Return([]service.CallResponse{}, nil)

	w := suite.http.MakeRequestWithHeaders(http.MethodGet,
		"/api/v1/calls?restaurant_id="+uuid.New().String(), nil,
		map[string]string{"X-Restaurant-Id": headerID.String()})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *CallHandlerTestSuite) TestListCalls_PassesLimit() {
	restaurantID := uuid.New()
	suite.mockService.EXPECT().
		List(restaurantID, 10).
		Return([]service.CallResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet,
		"/api/v1/calls?restaurant_id="+restaurantID.String()+"&limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *CallHandlerTestSuite) TestListCalls_MissingRestaurantID() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/calls", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *CallHandlerTestSuite) TestListCalls_ServiceFailure() {
	restaurantID := uuid.New()
	suite.mockService.EXPECT().
		List(restaurantID, 0).
		Return(nil, errors.New("db down"))

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/calls?restaurant_id="+restaurantID.String(), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *CallHandlerTestSuite) TestCreateCall_FromPayloadRestaurantID() {
	restaurantID := uuid.New()
	callID := uuid.New()
	suite.mockService.EXPECT().
		Create(restaurantID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.CreateCallRequest) (uuid.UUID, error) {
			suite.Equal("+15551234567", req.Caller)
			suite.Equal("completed", req.Outcome)
			return callID, nil
		})

	body := fmt.Sprintf(`{
		"restaurant_id": %q,
		"started_at": "2025-01-01T12:00:00Z",
		"ended_at": "2025-01-01T12:05:00Z",
		"duration_seconds": 300,
		"caller": "+15551234567",
		"outcome": "completed",
		"messages": [{"role": "user", "content": "What's on your menu?"}]
	}`, restaurantID.String())
	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/calls", []byte(body), nil)

	suite.Equal(http.StatusOK, w.Code)
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(true, response["success"])
	suite.Equal(callID.String(), response["id"])
}

func (suite *CallHandlerTestSuite) TestCreateCall_HeaderWinsOverPayload() {
	headerID := uuid.New()
	suite.mockService.EXPECT().
		Create(headerID, gomock.Any()).
		Return(uuid.New(), nil)

	body := fmt.Sprintf(`{"restaurant_id": %q, "started_at": "2025-01-01T12:00:00Z"}`, uuid.New().String())
	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/calls", []byte(body),
		map[string]string{"X-Restaurant-Id": headerID.String()})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *CallHandlerTestSuite) TestCreateCall_MissingRestaurantID() {
	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/calls",
		[]byte(`{"started_at": "2025-01-01T12:00:00Z"}`), nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *CallHandlerTestSuite) TestCreateCall_InvalidBody() {
	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/calls", []byte(`{not json`), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CallHandlerTestSuite) TestCreateCall_ValidationError() {
	restaurantID := uuid.New()
	suite.mockService.EXPECT().
		Create(restaurantID, gomock.Any()).
		Return(uuid.Nil, apperrors.NewValidationError("started_at", "is required"))

	body := fmt.Sprintf(`{"restaurant_id": %q, "started_at": %q}`,
		restaurantID.String(), time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339))
	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/calls", []byte(body), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CallHandlerTestSuite) TestCreateCall_ServiceFailure() {
	restaurantID := uuid.New()
	suite.mockService.EXPECT().
		Create(restaurantID, gomock.Any()).
		Return(uuid.Nil, errors.New("insert failed"))

	body := fmt.Sprintf(`{"restaurant_id": %q, "started_at": %q}`,
		restaurantID.String(), time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339))
	w := suite.http.MakeRawRequest(http.MethodPost, "/api/v1/calls", []byte(body), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestCallHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CallHandlerTestSuite))
}
