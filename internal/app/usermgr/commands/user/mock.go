package user

import (
	"context"

	"github.com/stretchr/testify/mock"
	"pkg.world.dev/usermgr/internal/app/usermgr/interfaces"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
)

var _ interfaces.UserHandler = (*MockHandler)(nil)

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) UI(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHandler) List(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHandler) Add(ctx context.Context, flags models.AddUserFlags) error {
	args := m.Called(ctx, flags)
	return args.Error(0)
}

func (m *MockHandler) Edit(ctx context.Context, flags models.EditUserFlags) error {
	args := m.Called(ctx, flags)
	return args.Error(0)
}

func (m *MockHandler) Delete(ctx context.Context, flags models.DeleteUserFlags) error {
	args := m.Called(ctx, flags)
	return args.Error(0)
}
