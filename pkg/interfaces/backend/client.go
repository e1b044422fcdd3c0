package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ClientOption allows for customization of the client
type ClientOption func(*BackendClient)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *BackendClient) {
		c.httpClient = httpClient
	}
}

// WithRateLimit installs a client-side limiter so bursts of dashboard
// activity cannot flood the backend. Operations still make exactly one
// round trip each; the limiter only delays them.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *BackendClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// BackendClient is the typed client for the Tikodea backend API. One method
// per backend capability, each a single round trip with no retry and no
// caching.
type BackendClient struct {
	config     *BackendConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *logrus.Logger
}

// NewBackendClient creates a new Tikodea backend API client
func NewBackendClient(config *BackendConfig, opts ...ClientOption) (*BackendClient, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := &BackendClient{
		config:     config,
		httpClient: &http.Client{},
		logger:     config.Logger,
	}

	if config.RateLimitRPS > 0 {
		client.limiter = rate.NewLimiter(rate.Limit(config.RateLimitRPS), 1)
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// handleResponse classifies a non-2xx response as a REQUEST_FAILED error.
// Failure bodies are not inspected; the backend's error shape is not a
// stable contract.
func (c *BackendClient) handleResponse(operation string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	c.logger.WithFields(logrus.Fields{
		"operation":   operation,
		"status_code": resp.StatusCode,
	}).Error("Backend request failed")

	return NewAPIError(ErrCodeRequestFailed, operation, resp.StatusCode, nil)
}

// decodeResponse decodes a success body into v. A malformed body is a
// transport-level failure and surfaces as the same REQUEST_FAILED kind.
func (c *BackendClient) decodeResponse(operation string, resp *http.Response, v interface{}) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		c.logger.WithFields(logrus.Fields{
			"operation": operation,
		}).WithError(err).Error("Failed to decode backend response")
		return NewAPIError(ErrCodeRequestFailed, operation, 0, err)
	}
	return nil
}

func (c *BackendClient) makeRequest(ctx context.Context, method, endpoint string, query url.Values, body interface{}) (*http.Response, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.HTTPTimeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
		c.logger.WithField("request_body", string(jsonBody)).Debug("Request payload")
	}

	fullURL := c.config.BaseURL + endpoint
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.logger.WithFields(logrus.Fields{
		"method":     method,
		"url":        fullURL,
		"request_id": requestID,
	}).Debug("Sending backend request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	return resp, nil
}
