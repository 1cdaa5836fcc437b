package api

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
)

// Ensure MockClient implements the interface.
var _ ClientInterface = (*MockClient)(nil)

// MockClient is a mock implementation of ClientInterface.
type MockClient struct {
	mock.Mock
}

// ListUsers mocks listing the users collection.
func (m *MockClient) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

// CreateUser mocks creating a user.
func (m *MockClient) CreateUser(ctx context.Context, payload models.UserPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// UpdateUser mocks updating a user.
func (m *MockClient) UpdateUser(ctx context.Context, id string, payload models.UserPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

// DeleteUser mocks deleting a user.
func (m *MockClient) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockHTTPClient is a mock implementation of HTTPClientInterface for testing.
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}
