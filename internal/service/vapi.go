package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"voice-assistant-backend/internal/config"
	apperrors "voice-assistant-backend/internal/errors"
)

// VapiService talks to the Vapi REST API: the shared assistant, the numbers
// registered on the platform and the provider credential object. Register
// and attach are idempotent so the whole allocation sequence can be
// replayed after any partial failure.
type VapiService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewVapiService creates a new Vapi service
func NewVapiService(cfg *config.Config) *VapiService {
	return &VapiService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// VapiAssistant is an assistant registered on the platform
type VapiAssistant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VapiPhoneNumber is a number registered on the platform, tagged with its
// assistant binding ("" means unbound)
type VapiPhoneNumber struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	AssistantID string `json:"assistantId"`
}

// vapiCredential is a provider credential object held by the platform
type vapiCredential struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
}

// GetSharedAssistant finds the shared assistant by its configured name
func (s *VapiService) GetSharedAssistant(ctx context.Context) (*VapiAssistant, error) {
	body, err := s.doRequest(ctx, http.MethodGet, "/assistant", nil)
	if err != nil {
		return nil, fmt.Errorf("list assistants: %w", err)
	}

	var assistants []VapiAssistant
	if err := json.Unmarshal(body, &assistants); err != nil {
		return nil, fmt.Errorf("decode assistants response: %w", err)
	}

	for _, a := range assistants {
		if a.Name == s.cfg.VapiAssistantName {
			assistant := a
			return &assistant, nil
		}
	}
	return nil, apperrors.ErrAssistantNotFound
}

// ListPhoneNumbers returns every number registered on the platform
func (s *VapiService) ListPhoneNumbers(ctx context.Context) ([]VapiPhoneNumber, error) {
	body, err := s.doRequest(ctx, http.MethodGet, "/phone-number", nil)
	if err != nil {
		return nil, fmt.Errorf("list phone numbers: %w", err)
	}

	var numbers []VapiPhoneNumber
	if err := json.Unmarshal(body, &numbers); err != nil {
		return nil, fmt.Errorf("decode phone numbers response: %w", err)
	}
	return numbers, nil
}

// RegisterPhoneNumber registers a provider number on the platform.
// Registering a number that is already present resolves to the existing
// registration instead of erroring, so replays are safe.
func (s *VapiService) RegisterPhoneNumber(ctx context.Context, phoneNumber, credentialID string) (*VapiPhoneNumber, error) {
	existing, err := s.findByNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	payload := map[string]string{
		"provider":     "twilio",
		"number":       phoneNumber,
		"credentialId": credentialID,
	}

	body, err := s.doRequest(ctx, http.MethodPost, "/phone-number", payload)
	if err != nil {
		// A concurrent registration may have won the race; re-resolve
		// before surfacing the failure.
		if existing, lookupErr := s.findByNumber(ctx, phoneNumber); lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("register phone number: %w", err)
	}

	var registered VapiPhoneNumber
	if err := json.Unmarshal(body, &registered); err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}
	return &registered, nil
}

// AttachToAssistant binds a registered number to the assistant. Attaching a
// number that is already bound succeeds without side effect.
func (s *VapiService) AttachToAssistant(ctx context.Context, phoneID, assistantID string) error {
	payload := map[string]string{"assistantId": assistantID}

	if _, err := s.doRequest(ctx, http.MethodPatch, "/phone-number/"+phoneID, payload); err != nil {
		return fmt.Errorf("attach phone number to assistant: %w", err)
	}
	return nil
}

// EnsureTwilioCredential returns the platform's Twilio credential handle,
// creating it once. Look-up-before-create keeps the call idempotent.
func (s *VapiService) EnsureTwilioCredential(ctx context.Context) (string, error) {
	body, err := s.doRequest(ctx, http.MethodGet, "/credential", nil)
	if err != nil {
		return "", fmt.Errorf("list credentials: %w", err)
	}

	var credentials []vapiCredential
	if err := json.Unmarshal(body, &credentials); err != nil {
		return "", fmt.Errorf("decode credentials response: %w", err)
	}
	for _, c := range credentials {
		if c.Provider == "twilio" {
			return c.ID, nil
		}
	}

	payload := map[string]string{
		"provider":   "twilio",
		"accountSid": s.cfg.TwilioAccountSID,
		"authToken":  s.cfg.TwilioAuthToken,
	}
	body, err = s.doRequest(ctx, http.MethodPost, "/credential", payload)
	if err != nil {
		return "", fmt.Errorf("create credential: %w", err)
	}

	var created vapiCredential
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("decode credential response: %w", err)
	}
	return created.ID, nil
}

func (s *VapiService) findByNumber(ctx context.Context, phoneNumber string) (*VapiPhoneNumber, error) {
	numbers, err := s.ListPhoneNumbers(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range numbers {
		if n.Number == phoneNumber {
			found := n
			return &found, nil
		}
	}
	return nil, nil
}

// doRequest performs an authenticated request with one retry on transport
// errors. API-level failures are not retried.
func (s *VapiService) doRequest(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	if s.cfg.VapiAPIKey == "" {
		return nil, apperrors.ErrVapiNotConfigured
	}

	var reqBody []byte
	if payload != nil {
		var err error
		reqBody, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}

	endpoint := strings.TrimRight(s.cfg.VapiBaseURL, "/") + path

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		var reader io.Reader
		if reqBody != nil {
			reader = bytes.NewReader(reqBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+s.cfg.VapiAPIKey)
		if reqBody != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %s %s: status %d: %s",
				apperrors.ErrVapiRequestFailed, method, path, resp.StatusCode, string(body))
		}
		return body, nil
	}
	return nil, fmt.Errorf("vapi request failed: %w", lastErr)
}
