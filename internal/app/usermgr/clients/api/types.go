package api

import (
	"context"
	"net/http"
	"time"

	"pkg.world.dev/usermgr/internal/app/usermgr/models"
)

// Interface implementation check.
var _ ClientInterface = &Client{}

// Client implements the users collection API over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient HTTPClientInterface
	Config     RequestConfig
}

// ClientInterface defines the contract for making API calls.
type ClientInterface interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, payload models.UserPayload) error
	UpdateUser(ctx context.Context, id string, payload models.UserPayload) error
	DeleteUser(ctx context.Context, id string) error
}

// HTTPClientInterface allows for mocking the underlying HTTP client.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestConfig holds configuration for individual requests.
type RequestConfig struct {
	// MaxRetries is the number of extra attempts for idempotent requests. Zero means a single attempt.
	MaxRetries int
	BaseDelay  time.Duration
	// Timeout is applied per attempt. Zero means no timeout.
	Timeout     time.Duration
	ContentType string
}
