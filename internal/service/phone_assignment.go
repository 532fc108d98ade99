package service

import (
	"context"
	"errors"

	"voice-assistant-backend/internal/database/models"
	apperrors "voice-assistant-backend/internal/errors"
	"voice-assistant-backend/internal/logger"
	"voice-assistant-backend/internal/repository"

	"github.com/google/uuid"
)

// AssignmentOutcome classifies how a phone allocation attempt ended. It is a
// fixed enum so callers never branch on provider-specific error text.
type AssignmentOutcome string

const (
	// OutcomeAssigned means a number was bound and committed to the directory.
	OutcomeAssigned AssignmentOutcome = "assigned"
	// OutcomeUnavailable is the declared degraded mode: no provider
	// credentials (or no shared assistant) are configured. Not an error.
	OutcomeUnavailable AssignmentOutcome = "unavailable"
	// OutcomeQuotaExhausted means the provider's trial ceiling was hit. The
	// allocation may still carry a number when an already-owned one could be
	// reused.
	OutcomeQuotaExhausted AssignmentOutcome = "quota_exhausted"
	// OutcomeProviderError is a terminal provider failure for this attempt.
	OutcomeProviderError AssignmentOutcome = "provider_error"
	// OutcomePlatformError is a terminal voice platform failure for this attempt.
	OutcomePlatformError AssignmentOutcome = "platform_error"
	// OutcomePersistenceConflict means the directory claim lost its race
	// twice. Safe to re-request.
	OutcomePersistenceConflict AssignmentOutcome = "persistence_conflict"
	// OutcomePersistenceError means the directory write failed after the
	// number went live on the platform. Safe to re-request: the retry
	// re-resolves the same registered number instead of purchasing another.
	OutcomePersistenceError AssignmentOutcome = "persistence_error"
)

// Assigned reports whether the outcome carries a usable phone number
func (o AssignmentOutcome) Assigned() bool {
	return o == OutcomeAssigned || o == OutcomeQuotaExhausted
}

// PhoneAssignmentService allocates a phone number to a restaurant: reuse a
// registered-but-unbound number first, otherwise provision one from Twilio.
// Every external mutation is idempotent and the directory upsert is the
// commit point, so the sequence can be replayed after any partial failure.
type PhoneAssignmentService struct {
	twilio   TwilioClientInterface
	vapi     VapiClientInterface
	mappings repository.PhoneMappingRepositoryInterface
}

// Ensure PhoneAssignmentService implements PhoneAssignmentServiceInterface
var _ PhoneAssignmentServiceInterface = (*PhoneAssignmentService)(nil)

// NewPhoneAssignmentService creates a new phone assignment service
func NewPhoneAssignmentService(
	twilio TwilioClientInterface,
	vapi VapiClientInterface,
	mappings repository.PhoneMappingRepositoryInterface,
) *PhoneAssignmentService {
	return &PhoneAssignmentService{
		twilio:   twilio,
		vapi:     vapi,
		mappings: mappings,
	}
}

// AssignPhoneNumber gives the restaurant a working phone number. The
// returned outcome always explains the result; the phone is empty unless
// outcome.Assigned(). A returned error carries detail for logging only —
// callers decide on the outcome, and restaurant creation must not fail
// because of it.
func (s *PhoneAssignmentService) AssignPhoneNumber(ctx context.Context, restaurantID uuid.UUID, forceNewPurchase bool) (string, AssignmentOutcome, error) {
	log := logger.New().WithField("restaurant_id", restaurantID.String())

	assistant, err := s.vapi.GetSharedAssistant(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssistantNotFound) || errors.Is(err, apperrors.ErrVapiNotConfigured) {
			log.Warn("No shared assistant available for phone assignment")
			return "", OutcomeUnavailable, nil
		}
		return "", OutcomePlatformError, err
	}

	phone, outcome, err := s.assignOnce(ctx, restaurantID, assistant, forceNewPurchase)
	if errors.Is(err, apperrors.ErrPhoneMappingConflict) {
		// Lost the claim race to a concurrent allocation. The search is
		// re-run once from scratch so the retry binds a different number
		// instead of fabricating a duplicate purchase.
		log.Info("Phone claim conflict, retrying search")
		phone, outcome, err = s.assignOnce(ctx, restaurantID, assistant, forceNewPurchase)
		if errors.Is(err, apperrors.ErrPhoneMappingConflict) {
			return "", OutcomePersistenceConflict, err
		}
	}
	if err == nil && outcome.Assigned() {
		log.WithField("phone_number", phone).Info("Phone number assigned")
	}
	return phone, outcome, err
}

func (s *PhoneAssignmentService) assignOnce(ctx context.Context, restaurantID uuid.UUID, assistant *VapiAssistant, forceNewPurchase bool) (string, AssignmentOutcome, error) {
	if !forceNewPurchase {
		phone, outcome, done, err := s.reuseRegisteredNumber(ctx, restaurantID, assistant)
		if done {
			return phone, outcome, err
		}
	}

	if !s.twilio.Configured() {
		logger.New().Warn("No reusable numbers and Twilio credentials not configured")
		return "", OutcomeUnavailable, nil
	}

	return s.provisionFromTwilio(ctx, restaurantID, assistant)
}

// reuseRegisteredNumber tries step 1 of the policy: a number already
// registered on the platform, unbound (or bound to the shared assistant) and
// absent from the directory. done=false means "nothing reusable, keep going".
func (s *PhoneAssignmentService) reuseRegisteredNumber(ctx context.Context, restaurantID uuid.UUID, assistant *VapiAssistant) (string, AssignmentOutcome, bool, error) {
	registered, err := s.vapi.ListPhoneNumbers(ctx)
	if err != nil {
		return "", OutcomePlatformError, true, err
	}

	byNumber := make(map[string]VapiPhoneNumber, len(registered))
	candidates := make([]string, 0, len(registered))
	for _, n := range registered {
		if n.Number == "" {
			continue
		}
		if n.AssistantID != "" && n.AssistantID != assistant.ID {
			continue
		}
		normalized := models.NormalizePhoneNumber(n.Number)
		byNumber[normalized] = n
		candidates = append(candidates, normalized)
	}
	if len(candidates) == 0 {
		return "", "", false, nil
	}

	unassigned, err := s.mappings.ListUnassigned(candidates)
	if err != nil {
		return "", OutcomePersistenceError, true, err
	}
	if len(unassigned) == 0 {
		return "", "", false, nil
	}

	chosen := unassigned[0]
	entry := byNumber[chosen]

	// Binding an already-bound number is a no-op on the platform side.
	if err := s.vapi.AttachToAssistant(ctx, entry.ID, assistant.ID); err != nil {
		return "", OutcomePlatformError, true, err
	}

	if err := s.commit(chosen, restaurantID); err != nil {
		if errors.Is(err, apperrors.ErrPhoneMappingConflict) {
			return "", OutcomePersistenceConflict, true, err
		}
		return "", OutcomePersistenceError, true, err
	}
	return chosen, OutcomeAssigned, true, nil
}

// provisionFromTwilio is steps 3–5 of the policy: credential handle, reuse
// an owned-but-unallocated provider number, otherwise search and purchase
// with quota fallback; then register, attach and commit.
func (s *PhoneAssignmentService) provisionFromTwilio(ctx context.Context, restaurantID uuid.UUID, assistant *VapiAssistant) (string, AssignmentOutcome, error) {
	credentialID, err := s.vapi.EnsureTwilioCredential(ctx)
	if err != nil {
		return "", OutcomePlatformError, err
	}

	outcome := OutcomeAssigned

	chosen, chosenOutcome, err := s.ownedUnassignedNumber(ctx)
	if err != nil {
		return "", chosenOutcome, err
	}

	if chosen == "" {
		available, err := s.twilio.SearchAvailableNumbers(ctx, 1)
		if err != nil {
			return "", OutcomeProviderError, err
		}
		if len(available) == 0 {
			return "", OutcomeProviderError, apperrors.ErrNoNumbersAvailable
		}

		purchased, err := s.twilio.PurchaseNumber(ctx, available[0])
		switch {
		case errors.Is(err, apperrors.ErrTwilioQuotaExceeded):
			// Trial ceiling. Degrade to an already-owned number; the
			// owned pool may have changed since the first enumeration.
			fallback, fallbackOutcome, lookupErr := s.ownedUnassignedNumber(ctx)
			if lookupErr != nil {
				return "", fallbackOutcome, lookupErr
			}
			if fallback == "" {
				logger.New().Warn("Twilio quota exhausted and no owned number available")
				return "", OutcomeQuotaExhausted, nil
			}
			chosen = fallback
			outcome = OutcomeQuotaExhausted
		case err != nil:
			return "", OutcomeProviderError, err
		default:
			chosen = purchased
		}
	}

	registeredNumber, err := s.vapi.RegisterPhoneNumber(ctx, chosen, credentialID)
	if err != nil {
		return "", OutcomePlatformError, err
	}
	if err := s.vapi.AttachToAssistant(ctx, registeredNumber.ID, assistant.ID); err != nil {
		return "", OutcomePlatformError, err
	}

	if err := s.commit(chosen, restaurantID); err != nil {
		if errors.Is(err, apperrors.ErrPhoneMappingConflict) {
			return "", OutcomePersistenceConflict, err
		}
		return "", OutcomePersistenceError, err
	}
	return chosen, outcome, nil
}

// ownedUnassignedNumber returns the first Twilio-owned number with no
// directory entry, or "" when none exists. The outcome accompanying a
// non-nil error says which side of the lookup failed.
func (s *PhoneAssignmentService) ownedUnassignedNumber(ctx context.Context) (string, AssignmentOutcome, error) {
	owned, err := s.twilio.ListOwnedNumbers(ctx)
	if err != nil {
		return "", OutcomeProviderError, err
	}
	if len(owned) == 0 {
		return "", "", nil
	}
	unassigned, err := s.mappings.ListUnassigned(owned)
	if err != nil {
		return "", OutcomePersistenceError, err
	}
	if len(unassigned) == 0 {
		return "", "", nil
	}
	return unassigned[0], "", nil
}

// commit writes the directory entry. It runs strictly after the platform
// registration: an entry must never point at a number that is not live on
// the assistant.
func (s *PhoneAssignmentService) commit(phoneNumber string, restaurantID uuid.UUID) error {
	return s.mappings.Upsert(phoneNumber, restaurantID)
}
