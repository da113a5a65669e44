package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pricelens/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	maxAttempts  = 3
	maxBodyBytes = 1 << 20
)

// Client fetches exchange rates from a Frankfurter-compatible API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	backoff     func(attempt int) time.Duration
	debug       bool
}

// NewClient creates a new exchange rate client
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(5), 5), // 5 req/s, burst of 5
		backoff:     exponentialBackoff,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[FX] "+format, args...)
	}
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

// latestResponse is the payload of GET /latest
type latestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// Rates returns the latest rates for base. 1 base = rates[c] c.
// The base currency itself is always present with rate 1.
func (c *Client) Rates(ctx context.Context, base domain.Currency) (map[domain.Currency]float64, error) {
	params := url.Values{}
	params.Add("from", string(base))
	reqURL := fmt.Sprintf("%s/latest?%s", c.baseURL, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}

		body, status, err := c.get(ctx, reqURL)
		if err != nil {
			c.debugLog("Request error (attempt %d): %v", attempt, err)
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			if err := c.sleep(ctx, attempt); err != nil {
				return nil, err
			}
			continue
		}

		if status != http.StatusOK {
			log.Printf("[FX] API error (attempt %d) - Status: %d, Body: %s", attempt, status, string(body))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrFXAPIFailure, status)
			// 4xx other than 429 will not succeed on retry
			if status >= 400 && status < 500 && status != http.StatusTooManyRequests {
				return nil, lastErr
			}
			if err := c.sleep(ctx, attempt); err != nil {
				return nil, err
			}
			continue
		}

		var payload latestResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		rates := mapRates(base, payload)
		c.debugLog("Fetched %d rates for base %s (date %s)", len(rates), base, payload.Date)
		return rates, nil
	}

	log.Printf("[FX] All retries failed for base %s", base)
	return nil, lastErr
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PriceLens/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrFXAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxBodyBytes)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read body: %v", domain.ErrFXAPIFailure, err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) sleep(ctx context.Context, attempt int) error {
	if attempt >= maxAttempts {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.backoff(attempt)):
		return nil
	}
}
