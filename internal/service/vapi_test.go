package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-assistant-backend/internal/config"
	apperrors "voice-assistant-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vapiTestConfig(baseURL string) *config.Config {
	return &config.Config{
		VapiBaseURL:       baseURL,
		VapiAPIKey:        "vapi_key_test",
		VapiAssistantName: "Restaurant Voice Assistant",
		TwilioAccountSID:  "AC_test",
		TwilioAuthToken:   "token_test",
	}
}

func TestVapiService_GetSharedAssistant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assistant", r.URL.Path)
		assert.Equal(t, "Bearer vapi_key_test", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]VapiAssistant{
			{ID: "asst_other", Name: "Another Assistant"},
			{ID: "asst_shared", Name: "Restaurant Voice Assistant"},
		})
	}))
	defer server.Close()

	svc := NewVapiService(vapiTestConfig(server.URL))
	assistant, err := svc.GetSharedAssistant(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "asst_shared", assistant.ID)
}

func TestVapiService_GetSharedAssistant_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]VapiAssistant{
			{ID: "asst_other", Name: "Another Assistant"},
		})
	}))
	defer server.Close()

	svc := NewVapiService(vapiTestConfig(server.URL))
	_, err := svc.GetSharedAssistant(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrAssistantNotFound)
}

func TestVapiService_RegisterPhoneNumber_AlreadyRegistered(t *testing.T) {
	// An existing registration is resolved by lookup; no POST happens.
	var posts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
			w.WriteHeader(http.StatusConflict)
			return
		}
		json.NewEncoder(w).Encode([]VapiPhoneNumber{
			{ID: "pn_existing", Number: "+15551112222", AssistantID: ""},
		})
	}))
	defer server.Close()

	svc := NewVapiService(vapiTestConfig(server.URL))
	registered, err := svc.RegisterPhoneNumber(context.Background(), "+15551112222", "cred_1")

	require.NoError(t, err)
	assert.Equal(t, "pn_existing", registered.ID)
	assert.Zero(t, posts)
}

func TestVapiService_RegisterPhoneNumber_New(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode([]VapiPhoneNumber{})
			return
		}

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "twilio", payload["provider"])
		assert.Equal(t, "+15551112222", payload["number"])
		assert.Equal(t, "cred_1", payload["credentialId"])

		json.NewEncoder(w).Encode(VapiPhoneNumber{ID: "pn_new", Number: "+15551112222"})
	}))
	defer server.Close()

	svc := NewVapiService(vapiTestConfig(server.URL))
	registered, err := svc.RegisterPhoneNumber(context.Background(), "+15551112222", "cred_1")

	require.NoError(t, err)
	assert.Equal(t, "pn_new", registered.ID)
}

func TestVapiService_RegisterPhoneNumber_LostRaceResolvesExisting(t *testing.T) {
	// The POST fails because a concurrent caller registered first; the
	// follow-up lookup resolves the winner's registration.
	var gets int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"number already exists"}`))
			return
		}
		gets++
		if gets == 1 {
			json.NewEncoder(w).Encode([]VapiPhoneNumber{})
			return
		}
		json.NewEncoder(w).Encode([]VapiPhoneNumber{
			{ID: "pn_winner", Number: "+15551112222"},
		})
	}))
	defer server.Close()

	svc := NewVapiService(vapiTestConfig(server.URL))
	registered, err := svc.RegisterPhoneNumber(context.Background(), "+15551112222", "cred_1")

	require.NoError(t, err)
	assert.Equal(t, "pn_winner", registered.ID)
}

func TestVapiService_AttachToAssistant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/phone-number/pn_1", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "asst_1", payload["assistantId"])

		json.NewEncoder(w).Encode(VapiPhoneNumber{ID: "pn_1", AssistantID: "asst_1"})
	}))
	defer server.Close()

	svc := NewVapiService(vapiTestConfig(server.URL))
	err := svc.AttachToAssistant(context.Background(), "pn_1", "asst_1")

	assert.NoError(t, err)
}

func TestVapiService_EnsureTwilioCredential_Existing(t *testing.T) {
	var posts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
			return
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"id": "cred_vonage", "provider": "vonage"},
			{"id": "cred_twilio", "provider": "twilio"},
		})
	}))
	defer server.Close()

	svc := NewVapiService(vapiTestConfig(server.URL))
	credentialID, err := svc.EnsureTwilioCredential(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cred_twilio", credentialID)
	assert.Zero(t, posts)
}

func TestVapiService_EnsureTwilioCredential_CreatesOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode([]map[string]string{})
			return
		}

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "twilio", payload["provider"])
		assert.Equal(t, "AC_test", payload["accountSid"])

		json.NewEncoder(w).Encode(map[string]string{"id": "cred_new", "provider": "twilio"})
	}))
	defer server.Close()

	svc := NewVapiService(vapiTestConfig(server.URL))
	credentialID, err := svc.EnsureTwilioCredential(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "cred_new", credentialID)
}

func TestVapiService_Unconfigured(t *testing.T) {
	svc := NewVapiService(&config.Config{VapiBaseURL: "https://api.vapi.ai"})

	_, err := svc.GetSharedAssistant(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrVapiNotConfigured)
}
