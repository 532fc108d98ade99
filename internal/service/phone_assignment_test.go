package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/mocks"
	"voice-assistant-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PhoneAssignmentServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTwilio   *mocks.MockTwilioClientInterface
	mockVapi     *mocks.MockVapiClientInterface
	mockMappings *mocks.MockPhoneMappingRepositoryInterface
	svc          *service.PhoneAssignmentService
	restaurantID uuid.UUID
	assistant    *service.VapiAssistant
}

func (suite *PhoneAssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTwilio = mocks.NewMockTwilioClientInterface(suite.ctrl)
	suite.mockVapi = mocks.NewMockVapiClientInterface(suite.ctrl)
	suite.mockMappings = mocks.NewMockPhoneMappingRepositoryInterface(suite.ctrl)
	suite.svc = service.NewPhoneAssignmentService(suite.mockTwilio, suite.mockVapi, suite.mockMappings)
	suite.restaurantID = uuid.New()
	suite.assistant = &service.VapiAssistant{ID: "asst_1", Name: "Restaurant Voice Assistant"}
}

func (suite *PhoneAssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_ReusesRegisteredNumber_WithoutTouchingTwilio() {
	// An unbound platform number absent from the directory is reused; the
	// provider is never contacted.
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return([]service.VapiPhoneNumber{
		{ID: "pn_1", Number: "+1 (555) 111-2222", AssistantID: ""},
		{ID: "pn_2", Number: "+15559990000", AssistantID: "asst_other"},
	}, nil)
	suite.mockMappings.EXPECT().ListUnassigned([]string{"+15551112222"}).Return([]string{"+15551112222"}, nil)
	suite.mockVapi.EXPECT().AttachToAssistant(gomock.Any(), "pn_1", "asst_1").Return(nil)
	suite.mockMappings.EXPECT().Upsert("+15551112222", suite.restaurantID).Return(nil)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomeAssigned, outcome)
	assert.Equal(suite.T(), "+15551112222", phone)
	assert.True(suite.T(), outcome.Assigned())
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_ForceNewPurchase_SkipsReuse() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockTwilio.EXPECT().Configured().Return(true)
	suite.mockVapi.EXPECT().EnsureTwilioCredential(gomock.Any()).Return("cred_1", nil)
	suite.mockTwilio.EXPECT().ListOwnedNumbers(gomock.Any()).Return(nil, nil)
	suite.mockTwilio.EXPECT().SearchAvailableNumbers(gomock.Any(), 1).Return([]string{"+15553334444"}, nil)
	suite.mockTwilio.EXPECT().PurchaseNumber(gomock.Any(), "+15553334444").Return("+15553334444", nil)
	suite.mockVapi.EXPECT().RegisterPhoneNumber(gomock.Any(), "+15553334444", "cred_1").
		Return(&service.VapiPhoneNumber{ID: "pn_new", Number: "+15553334444"}, nil)
	suite.mockVapi.EXPECT().AttachToAssistant(gomock.Any(), "pn_new", "asst_1").Return(nil)
	suite.mockMappings.EXPECT().Upsert("+15553334444", suite.restaurantID).Return(nil)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, true)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomeAssigned, outcome)
	assert.Equal(suite.T(), "+15553334444", phone)
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_QuotaExceeded_FallsBackToOwnedNumber() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return(nil, nil)
	suite.mockTwilio.EXPECT().Configured().Return(true)
	suite.mockVapi.EXPECT().EnsureTwilioCredential(gomock.Any()).Return("cred_1", nil)
	// First enumeration of the owned pool finds nothing reusable
	suite.mockTwilio.EXPECT().ListOwnedNumbers(gomock.Any()).Return(nil, nil)
	suite.mockTwilio.EXPECT().SearchAvailableNumbers(gomock.Any(), 1).Return([]string{"+15553334444"}, nil)
	suite.mockTwilio.EXPECT().PurchaseNumber(gomock.Any(), "+15553334444").Return("", apperrors.ErrTwilioQuotaExceeded)
	// The quota fallback re-enumerates and wins an owned number
	suite.mockTwilio.EXPECT().ListOwnedNumbers(gomock.Any()).Return([]string{"+15557778888"}, nil)
	suite.mockMappings.EXPECT().ListUnassigned([]string{"+15557778888"}).Return([]string{"+15557778888"}, nil)
	suite.mockVapi.EXPECT().RegisterPhoneNumber(gomock.Any(), "+15557778888", "cred_1").
		Return(&service.VapiPhoneNumber{ID: "pn_owned", Number: "+15557778888"}, nil)
	suite.mockVapi.EXPECT().AttachToAssistant(gomock.Any(), "pn_owned", "asst_1").Return(nil)
	suite.mockMappings.EXPECT().Upsert("+15557778888", suite.restaurantID).Return(nil)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomeQuotaExhausted, outcome)
	assert.Equal(suite.T(), "+15557778888", phone)
	assert.True(suite.T(), outcome.Assigned())
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_QuotaExceeded_NoOwnedNumber() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return(nil, nil)
	suite.mockTwilio.EXPECT().Configured().Return(true)
	suite.mockVapi.EXPECT().EnsureTwilioCredential(gomock.Any()).Return("cred_1", nil)
	suite.mockTwilio.EXPECT().ListOwnedNumbers(gomock.Any()).Return(nil, nil).Times(2)
	suite.mockTwilio.EXPECT().SearchAvailableNumbers(gomock.Any(), 1).Return([]string{"+15553334444"}, nil)
	suite.mockTwilio.EXPECT().PurchaseNumber(gomock.Any(), "+15553334444").Return("", apperrors.ErrTwilioQuotaExceeded)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomeQuotaExhausted, outcome)
	assert.Empty(suite.T(), phone)
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_ClaimConflict_RetriesSearchOnce() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)

	// First pass loses the directory race on +15551112222
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return([]service.VapiPhoneNumber{
		{ID: "pn_1", Number: "+15551112222"},
		{ID: "pn_2", Number: "+15553334444"},
	}, nil)
	suite.mockMappings.EXPECT().ListUnassigned([]string{"+15551112222", "+15553334444"}).
		Return([]string{"+15551112222", "+15553334444"}, nil)
	suite.mockVapi.EXPECT().AttachToAssistant(gomock.Any(), "pn_1", "asst_1").Return(nil)
	suite.mockMappings.EXPECT().Upsert("+15551112222", suite.restaurantID).Return(apperrors.ErrPhoneMappingConflict)

	// Retry re-runs the search and binds the remaining number
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return([]service.VapiPhoneNumber{
		{ID: "pn_1", Number: "+15551112222"},
		{ID: "pn_2", Number: "+15553334444"},
	}, nil)
	suite.mockMappings.EXPECT().ListUnassigned([]string{"+15551112222", "+15553334444"}).
		Return([]string{"+15553334444"}, nil)
	suite.mockVapi.EXPECT().AttachToAssistant(gomock.Any(), "pn_2", "asst_1").Return(nil)
	suite.mockMappings.EXPECT().Upsert("+15553334444", suite.restaurantID).Return(nil)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomeAssigned, outcome)
	assert.Equal(suite.T(), "+15553334444", phone)
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_ClaimConflictTwice_SurfacesConflict() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return([]service.VapiPhoneNumber{
		{ID: "pn_1", Number: "+15551112222"},
	}, nil).Times(2)
	suite.mockMappings.EXPECT().ListUnassigned([]string{"+15551112222"}).
		Return([]string{"+15551112222"}, nil).Times(2)
	suite.mockVapi.EXPECT().AttachToAssistant(gomock.Any(), "pn_1", "asst_1").Return(nil).Times(2)
	suite.mockMappings.EXPECT().Upsert("+15551112222", suite.restaurantID).
		Return(apperrors.ErrPhoneMappingConflict).Times(2)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomePersistenceConflict, outcome)
	assert.Empty(suite.T(), phone)
	assert.False(suite.T(), outcome.Assigned())
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_NoSharedAssistant_Unavailable() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(nil, apperrors.ErrAssistantNotFound)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomeUnavailable, outcome)
	assert.Empty(suite.T(), phone)
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_TwilioUnconfigured_Unavailable() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return(nil, nil)
	suite.mockTwilio.EXPECT().Configured().Return(false)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomeUnavailable, outcome)
	assert.Empty(suite.T(), phone)
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_CommitFailure_SurfacesPersistenceError() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return([]service.VapiPhoneNumber{
		{ID: "pn_1", Number: "+15551112222"},
	}, nil)
	suite.mockMappings.EXPECT().ListUnassigned([]string{"+15551112222"}).Return([]string{"+15551112222"}, nil)
	suite.mockVapi.EXPECT().AttachToAssistant(gomock.Any(), "pn_1", "asst_1").Return(nil)
	suite.mockMappings.EXPECT().Upsert("+15551112222", suite.restaurantID).Return(errors.New("connection reset"))

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomePersistenceError, outcome)
	assert.Empty(suite.T(), phone)
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_PlatformListFailure_PlatformError() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return(nil, errors.New("gateway timeout"))

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), service.OutcomePlatformError, outcome)
	assert.Empty(suite.T(), phone)
}

func (suite *PhoneAssignmentServiceTestSuite) TestAssign_NoNumbersAvailable_ProviderError() {
	suite.mockVapi.EXPECT().GetSharedAssistant(gomock.Any()).Return(suite.assistant, nil)
	suite.mockVapi.EXPECT().ListPhoneNumbers(gomock.Any()).Return(nil, nil)
	suite.mockTwilio.EXPECT().Configured().Return(true)
	suite.mockVapi.EXPECT().EnsureTwilioCredential(gomock.Any()).Return("cred_1", nil)
	suite.mockTwilio.EXPECT().ListOwnedNumbers(gomock.Any()).Return(nil, nil)
	suite.mockTwilio.EXPECT().SearchAvailableNumbers(gomock.Any(), 1).Return([]string{}, nil)

	phone, outcome, err := suite.svc.AssignPhoneNumber(context.Background(), suite.restaurantID, false)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoNumbersAvailable)
	assert.Equal(suite.T(), service.OutcomeProviderError, outcome)
	assert.Empty(suite.T(), phone)
}

func TestPhoneAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PhoneAssignmentServiceTestSuite))
}
