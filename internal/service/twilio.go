package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"voice-assistant-backend/internal/config"
	apperrors "voice-assistant-backend/internal/errors"
)

// Twilio error code returned when a trial account hits its phone number
// ceiling. Classified as quota, never retried.
const twilioTrialLimitCode = 21404

// TwilioService talks to the Twilio REST API: enumerating owned numbers,
// searching available ones and purchasing. All calls are bounded network I/O
// with a single local retry on transport errors.
type TwilioService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewTwilioService creates a new Twilio service
func NewTwilioService(cfg *config.Config) *TwilioService {
	return &TwilioService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// twilioIncomingNumbersResponse is the owned-numbers list payload
type twilioIncomingNumbersResponse struct {
	IncomingPhoneNumbers []twilioPhoneNumber `json:"incoming_phone_numbers"`
}

// twilioAvailableNumbersResponse is the available-numbers search payload
type twilioAvailableNumbersResponse struct {
	AvailablePhoneNumbers []twilioPhoneNumber `json:"available_phone_numbers"`
}

type twilioPhoneNumber struct {
	PhoneNumber string `json:"phone_number"`
}

// twilioErrorResponse is Twilio's error payload
type twilioErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Configured reports whether account credentials are present
func (s *TwilioService) Configured() bool {
	return s.cfg.TwilioConfigured()
}

// ListOwnedNumbers returns the numbers the Twilio account already owns
func (s *TwilioService) ListOwnedNumbers(ctx context.Context) ([]string, error) {
	if !s.Configured() {
		return nil, apperrors.ErrTwilioNotConfigured
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/IncomingPhoneNumbers.json",
		strings.TrimRight(s.cfg.TwilioBaseURL, "/"), s.cfg.TwilioAccountSID)

	body, _, err := s.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("list owned numbers: %w", err)
	}

	var resp twilioIncomingNumbersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode owned numbers response: %w", err)
	}

	numbers := make([]string, 0, len(resp.IncomingPhoneNumbers))
	for _, n := range resp.IncomingPhoneNumbers {
		if n.PhoneNumber != "" {
			numbers = append(numbers, n.PhoneNumber)
		}
	}
	return numbers, nil
}

// SearchAvailableNumbers searches local numbers available for purchase in
// the account's configured country
func (s *TwilioService) SearchAvailableNumbers(ctx context.Context, limit int) ([]string, error) {
	if !s.Configured() {
		return nil, apperrors.ErrTwilioNotConfigured
	}
	if limit < 1 {
		limit = 1
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/AvailablePhoneNumbers/%s/Local.json?Limit=%d",
		strings.TrimRight(s.cfg.TwilioBaseURL, "/"), s.cfg.TwilioAccountSID,
		s.cfg.TwilioCountryCode, limit)

	body, _, err := s.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("search available numbers: %w", err)
	}

	var resp twilioAvailableNumbersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode available numbers response: %w", err)
	}

	numbers := make([]string, 0, len(resp.AvailablePhoneNumbers))
	for _, n := range resp.AvailablePhoneNumbers {
		if n.PhoneNumber != "" {
			numbers = append(numbers, n.PhoneNumber)
		}
	}
	return numbers, nil
}

// PurchaseNumber buys a phone number. A trial-limit response is classified
// as ErrTwilioQuotaExceeded so the caller can degrade to an existing number
// instead of failing the allocation.
func (s *TwilioService) PurchaseNumber(ctx context.Context, phoneNumber string) (string, error) {
	if !s.Configured() {
		return "", apperrors.ErrTwilioNotConfigured
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/IncomingPhoneNumbers.json",
		strings.TrimRight(s.cfg.TwilioBaseURL, "/"), s.cfg.TwilioAccountSID)

	form := url.Values{}
	form.Set("PhoneNumber", phoneNumber)

	body, status, err := s.doFormRequest(ctx, endpoint, form)
	if err != nil {
		return "", fmt.Errorf("purchase number: %w", err)
	}

	if status != http.StatusCreated {
		var twilioErr twilioErrorResponse
		if json.Unmarshal(body, &twilioErr) == nil && twilioErr.Code == twilioTrialLimitCode {
			return "", apperrors.ErrTwilioQuotaExceeded
		}
		return "", fmt.Errorf("%w: status %d: %s", apperrors.ErrTwilioRejected, status, strconv.Quote(string(body)))
	}

	var purchased twilioPhoneNumber
	if err := json.Unmarshal(body, &purchased); err != nil {
		return "", fmt.Errorf("decode purchase response: %w", err)
	}
	if purchased.PhoneNumber == "" {
		purchased.PhoneNumber = phoneNumber
	}
	return purchased.PhoneNumber, nil
}

// doRequest performs an authenticated GET/DELETE style request with one
// retry on transport errors. Non-2xx statuses are returned to the caller
// for classification, not retried.
func (s *TwilioService) doRequest(ctx context.Context, method, endpoint string, payload io.Reader) ([]byte, int, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
		if err != nil {
			return nil, 0, err
		}
		req.SetBasicAuth(s.cfg.TwilioAccountSID, s.cfg.TwilioAuthToken)

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
			return nil, resp.StatusCode, err
		}
		if resp.StatusCode >= http.StatusBadRequest && method == http.MethodGet {
			return body, resp.StatusCode, fmt.Errorf("twilio api status %d", resp.StatusCode)
		}
		return body, resp.StatusCode, nil
	}
	return nil, 0, fmt.Errorf("twilio request failed: %w", lastErr)
}

// doFormRequest posts form data with one retry on transport errors. The
// response body and status are always handed back so purchase failures can
// be classified by error code.
func (s *TwilioService) doFormRequest(ctx context.Context, endpoint string, form url.Values) ([]byte, int, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, 0, err
		}
		req.SetBasicAuth(s.cfg.TwilioAccountSID, s.cfg.TwilioAuthToken)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

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
			return nil, resp.StatusCode, err
		}
		return body, resp.StatusCode, nil
	}
	return nil, 0, fmt.Errorf("twilio request failed: %w", lastErr)
}
