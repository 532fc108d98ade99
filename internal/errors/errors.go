package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrRestaurantNotFound   = &NotFoundError{Entity: "restaurant"}
	ErrPhoneMappingNotFound = &NotFoundError{Entity: "phone mapping"}
	ErrAssistantNotFound    = &NotFoundError{Entity: "shared assistant"}
)

// Already Exists Errors
var (
	ErrRestaurantExists = &AlreadyExistsError{Entity: "restaurant", Context: "with this API key"}
)

// Directory Store Errors
var (
	// ErrPhoneMappingConflict means the number was claimed by another
	// restaurant first. The first committed row wins; callers retry their
	// search instead of overwriting.
	ErrPhoneMappingConflict = errors.New("phone number is already mapped to a different restaurant")
)

// Provider (Twilio) Errors
var (
	ErrTwilioNotConfigured = errors.New("twilio credentials are not configured")
	// ErrTwilioQuotaExceeded is the trial-account ceiling. It is a
	// classified outcome, not a failure: the allocator falls back to an
	// already-owned number.
	ErrTwilioQuotaExceeded  = errors.New("twilio account phone number quota exceeded")
	ErrTwilioRejected       = errors.New("twilio rejected the request")
	ErrNoNumbersAvailable   = errors.New("no phone numbers available for purchase")
)

// Voice Platform (Vapi) Errors
var (
	ErrVapiNotConfigured = errors.New("vapi api key is not configured")
	ErrVapiRequestFailed = errors.New("vapi api request failed")
)

// Authentication Errors
var (
	ErrInvalidWebhookSecret = &AuthenticationError{Message: "invalid webhook secret"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
