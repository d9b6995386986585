package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/harborlane/freightflow-go/internal/domain/shared"
	"github.com/harborlane/freightflow-go/internal/infrastructure/config"
	"github.com/harborlane/freightflow-go/internal/infrastructure/ports"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = time.Second
)

// FreightClient talks to the freight pricing backend over HTTP. Reads
// (port search, quote fetch) are rate limited and retried with exponential
// backoff; booking submissions go out exactly once, since replaying a
// booking request can double-book cargo.
type FreightClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	apiKey      string
	maxRetries  int
	backoffBase time.Duration
	clock       shared.Clock
}

// NewFreightClient creates a client from configuration.
// If clock is nil, uses RealClock for production.
func NewFreightClient(cfg *config.APIConfig, clock shared.Clock) *FreightClient {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.Retry.MaxAttempts
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	backoffBase := cfg.Retry.BackoffBase
	if backoffBase == 0 {
		backoffBase = defaultBackoffBase
	}
	requests := cfg.RateLimit.Requests
	if requests == 0 {
		requests = 5
	}
	burst := cfg.RateLimit.Burst
	if burst == 0 {
		burst = requests
	}
	return &FreightClient{
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(requests), burst),
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
		clock:       clock,
	}
}

// SearchPorts queries the place reference endpoint with a free-text prefix
func (c *FreightClient) SearchPorts(ctx context.Context, query string) ([]ports.PlaceHit, error) {
	path := "/references/ports/search?q=" + url.QueryEscape(query)

	var response struct {
		Results []struct {
			DisplayName string `json:"displayName"`
			CountryCode string `json:"countryCode"`
			PlaceType   string `json:"placeType"`
		} `json:"results"`
	}

	if err := c.request(ctx, "GET", path, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to search ports: %w", err)
	}

	hits := make([]ports.PlaceHit, len(response.Results))
	for i, r := range response.Results {
		hits[i] = ports.PlaceHit{
			DisplayName: r.DisplayName,
			CountryCode: r.CountryCode,
			PlaceType:   r.PlaceType,
		}
	}
	return hits, nil
}

// FetchQuotes requests carrier offers for a route and cargo combination.
// An empty quotes array is a successful response, not an error.
func (c *FreightClient) FetchQuotes(ctx context.Context, req *ports.RateRequest) ([]ports.QuoteData, error) {
	payload := struct {
		Origin        string  `json:"origin"`
		Destination   string  `json:"destination"`
		CargoType     string  `json:"cargoType"`
		ContainerSize string  `json:"containerSize,omitempty"`
		Quantity      int     `json:"quantity,omitempty"`
		WeightKg      float64 `json:"weightKg,omitempty"`
		VolumeCbm     float64 `json:"volumeCbm,omitempty"`
		Commodity     string  `json:"commodity,omitempty"`
		ReadyDate     string  `json:"readyDate,omitempty"`
	}{
		Origin:        req.Origin,
		Destination:   req.Destination,
		CargoType:     req.CargoType,
		ContainerSize: req.ContainerSize,
		Quantity:      req.Quantity,
		WeightKg:      req.WeightKg,
		VolumeCbm:     req.VolumeCbm,
		Commodity:     req.Commodity,
		ReadyDate:     req.ReadyDate,
	}

	var response struct {
		Quotes []struct {
			ID            string  `json:"id"`
			CarrierName   string  `json:"carrierName"`
			Price         float64 `json:"price"`
			Currency      string  `json:"currency"`
			TransitDays   int     `json:"transitDays"`
			VesselName    string  `json:"vesselName"`
			DepartureDate string  `json:"departureDate"`
			RiskScore     float64 `json:"riskScore"`
			FeeBreakdown  []struct {
				Label  string  `json:"label"`
				Amount float64 `json:"amount"`
			} `json:"feeBreakdown"`
		} `json:"quotes"`
	}

	if err := c.request(ctx, "POST", "/quotes", payload, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	quotes := make([]ports.QuoteData, len(response.Quotes))
	for i, q := range response.Quotes {
		fees := make([]ports.FeeLineData, len(q.FeeBreakdown))
		for j, f := range q.FeeBreakdown {
			fees[j] = ports.FeeLineData{Label: f.Label, Amount: f.Amount}
		}
		quotes[i] = ports.QuoteData{
			ID:            q.ID,
			CarrierName:   q.CarrierName,
			Price:         q.Price,
			Currency:      q.Currency,
			TransitDays:   q.TransitDays,
			VesselName:    q.VesselName,
			DepartureDate: q.DepartureDate,
			FeeBreakdown:  fees,
			RiskScore:     q.RiskScore,
		}
	}
	return quotes, nil
}

// CreateBooking submits a booking. The request is sent exactly once with no
// retry on any failure; resubmission is always an explicit caller decision.
func (c *FreightClient) CreateBooking(ctx context.Context, req *ports.BookingRequest) (*ports.BookingResult, error) {
	payload := struct {
		QuoteID     string  `json:"quoteId"`
		Origin      string  `json:"origin"`
		Destination string  `json:"destination"`
		Carrier     string  `json:"carrier"`
		Price       float64 `json:"price"`
		Currency    string  `json:"currency"`
	}{
		QuoteID:     req.QuoteID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Carrier:     req.Carrier,
		Price:       req.Price,
		Currency:    req.Currency,
	}

	var response struct {
		Success    bool   `json:"success"`
		BookingRef string `json:"bookingRef"`
	}

	if err := c.requestOnce(ctx, "POST", "/bookings", payload, &response); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &ports.BookingResult{
		Success:    response.Success,
		BookingRef: response.BookingRef,
	}, nil
}

func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64() // 0.5 to 1.5
	return time.Duration(float64(d) * jitter)
}

// request makes an HTTP request with rate limiting and exponential backoff
// retries. Only transient conditions retry: network errors, 429, and 5xx.
func (c *FreightClient) request(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		resp, respBody, err := c.do(ctx, method, path, body)
		if err != nil {
			lastErr = &retryableError{message: fmt.Sprintf("network error: %v", err)}
			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}
			c.clock.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		// 429: honor Retry-After when the server provides one
		if resp.StatusCode == http.StatusTooManyRequests {
			var retryAfterDuration time.Duration
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, err := strconv.Atoi(retryAfter); err == nil {
					retryAfterDuration = time.Duration(seconds) * time.Second
				}
			}

			lastErr = &retryableError{message: "rate limited (429)"}
			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}

			backoffDelay := addJitter(c.backoffBase * time.Duration(1<<attempt))
			if retryAfterDuration > 0 {
				backoffDelay = retryAfterDuration
			}
			c.clock.Sleep(backoffDelay)
			continue
		}

		// 5xx: retryable
		if resp.StatusCode >= 500 {
			lastErr = &retryableError{message: fmt.Sprintf("server error (%d)", resp.StatusCode)}
			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}
			c.clock.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		return c.finish(resp.StatusCode, respBody, result)
	}

	if lastErr != nil {
		return fmt.Errorf("max retries exceeded: %w", lastErr)
	}
	return fmt.Errorf("max retries exceeded")
}

// requestOnce makes a single HTTP request with rate limiting and no retry
// of any kind
func (c *FreightClient) requestOnce(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	resp, respBody, err := c.do(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}

	return c.finish(resp.StatusCode, respBody, result)
}

// do executes one HTTP round trip and drains the body
func (c *FreightClient) do(ctx context.Context, method, path string, body interface{}) (*http.Response, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, respBody, nil
}

// finish maps a terminal status code to a result or an error
func (c *FreightClient) finish(statusCode int, respBody []byte, result interface{}) error {
	if statusCode < 200 || statusCode >= 300 {
		return fmt.Errorf("API error (status %d): %s", statusCode, string(respBody))
	}
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}

// retryableError represents an error that should trigger a retry
type retryableError struct {
	message string
}

func (e *retryableError) Error() string {
	return e.message
}
