package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
	"pkg.world.dev/usermgr/internal/pkg/logger"
)

const (
	get  = http.MethodGet
	post = http.MethodPost
	put  = http.MethodPut
	del  = http.MethodDelete

	jitterDivisor = 2 // Divisor used to calculate maximum jitter range

	requestIDHeader = "X-Request-ID"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// NewClient creates a new API client with the given base URL.
func NewClient(baseURL string, config RequestConfig) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: config.Timeout,
		},
		Config: config,
	}
}

// DefaultRequestConfig returns a single attempt without timeout.
func DefaultRequestConfig() RequestConfig {
	return RequestConfig{
		MaxRetries:  0,
		BaseDelay:   100 * time.Millisecond, //nolint:mnd // backoff base
		Timeout:     0,
		ContentType: "application/json",
	}
}

// sendRequest sends an HTTP request and returns the response body.
func (c *Client) sendRequest(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	req, err := c.prepareRequest(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	return c.makeRequestWithRetries(ctx, req)
}

// prepareRequest creates an HTTP request with proper headers.
func (c *Client) prepareRequest(ctx context.Context, method, endpoint string, body interface{}) (*http.Request, error) {
	var bodyReader io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, eris.Wrap(err, "Failed to marshal request body")
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := c.BaseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to create request")
	}

	req.Header.Set(requestIDHeader, uuid.NewString())

	if body != nil {
		contentType := c.Config.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// makeRequestWithRetries executes the HTTP request, retrying idempotent methods with
// exponential backoff when MaxRetries allows it.
func (c *Client) makeRequestWithRetries(ctx context.Context, req *http.Request) ([]byte, error) {
	attempts := 1
	if req.Method != post {
		attempts += max(c.Config.MaxRetries, 0)
	}

	var lastErr error
	for i := range attempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if i > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, eris.Wrap(err, "Failed to rewind request body")
			}
			req.Body = body
		}

		logger.DebugWithFields("sending request", map[string]interface{}{
			"method":     req.Method,
			"url":        req.URL.String(),
			"request_id": req.Header.Get(requestIDHeader),
			"attempt":    i + 1,
		})

		respBody, err := c.doRequest(req)
		if err == nil {
			return respBody, nil
		}
		lastErr = err

		if !c.isRetryableError(err) || i == attempts-1 {
			break
		}

		delay := c.exponentialBackoffWithJitter(c.Config.BaseDelay, i)
		logger.Warnf("Failed to make request [%s]: %s. Will retry in %s", req.URL, err.Error(), delay)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if attempts > 1 {
		return nil, eris.Wrapf(lastErr, "Failed after %d attempts", attempts)
	}
	return nil, lastErr
}

// doRequest executes a single HTTP request.
func (c *Client) doRequest(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "%s %s", req.Method, req.URL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    errorMessage(body),
		}
	}

	return body, nil
}

// errorMessage extracts a human readable message from an error body, if it has one.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		if msg := gjson.GetBytes(body, key).String(); msg != "" {
			return msg
		}
	}
	return ""
}

// isRetryableError checks if the error is transient and should be retried.
func (c *Client) isRetryableError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// exponentialBackoffWithJitter calculates delay with exponential backoff and jitter.
func (c *Client) exponentialBackoffWithJitter(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	backoff := base * (1 << attempt) // Exponential growth
	half := int64(backoff / jitterDivisor)
	if half <= 0 {
		return backoff
	}
	jitter := time.Duration(rand.Int63n(half)) //nolint:gosec // it's safe to use rand here
	return backoff + jitter
}

// parseResponse decodes a flat JSON body into T.
func parseResponse[T any](body []byte) (T, error) {
	var result T
	if len(bytes.TrimSpace(body)) == 0 {
		return result, eris.New("empty response body")
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, eris.Wrap(err, "Failed to parse response")
	}
	return result, nil
}
