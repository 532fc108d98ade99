package service

import (
	"context"

	"voice-assistant-backend/internal/cache"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TwilioClientInterface is the telephony provider boundary used by the allocator
type TwilioClientInterface interface {
	Configured() bool
	ListOwnedNumbers(ctx context.Context) ([]string, error)
	SearchAvailableNumbers(ctx context.Context, limit int) ([]string, error)
	PurchaseNumber(ctx context.Context, phoneNumber string) (string, error)
}

// VapiClientInterface is the voice platform boundary used by the allocator
type VapiClientInterface interface {
	GetSharedAssistant(ctx context.Context) (*VapiAssistant, error)
	ListPhoneNumbers(ctx context.Context) ([]VapiPhoneNumber, error)
	RegisterPhoneNumber(ctx context.Context, phoneNumber, credentialID string) (*VapiPhoneNumber, error)
	AttachToAssistant(ctx context.Context, phoneID, assistantID string) error
	EnsureTwilioCredential(ctx context.Context) (string, error)
}

// PhoneAssignmentServiceInterface defines the phone allocation operation
type PhoneAssignmentServiceInterface interface {
	AssignPhoneNumber(ctx context.Context, restaurantID uuid.UUID, forceNewPurchase bool) (string, AssignmentOutcome, error)
}

// CallRoutingServiceInterface resolves an inbound number to its restaurant
type CallRoutingServiceInterface interface {
	ResolveRestaurant(phoneNumber string) (uuid.UUID, error)
}

// RestaurantServiceInterface defines restaurant business operations
type RestaurantServiceInterface interface {
	Create(ctx context.Context, req *CreateRestaurantRequest) (*RestaurantResponse, error)
	GetByID(id uuid.UUID) (*RestaurantResponse, error)
}

// CallHistoryServiceInterface records and lists voice calls per restaurant
type CallHistoryServiceInterface interface {
	Create(restaurantID uuid.UUID, req *CreateCallRequest) (uuid.UUID, error)
	List(restaurantID uuid.UUID, limit int) ([]CallResponse, error)
}

// KnowledgeServiceInterface defines knowledge base operations
type KnowledgeServiceInterface interface {
	Search(ctx context.Context, restaurantID, category, query string) ([]cache.SearchResult, error)
	GenerateEmbeddings(ctx context.Context, restaurantID, category string) (int, error)
	InvalidateCache(restaurantID, category string) int
}

// EmbeddingClientInterface is the external embedding-generation service boundary
type EmbeddingClientInterface interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)
	RequestReindex(ctx context.Context, restaurantID, category string) (int, error)
}

// SearchClientInterface is the external similarity-search service boundary
type SearchClientInterface interface {
	Search(ctx context.Context, restaurantID, category string, embedding []float64, limit int) ([]cache.SearchResult, error)
}
