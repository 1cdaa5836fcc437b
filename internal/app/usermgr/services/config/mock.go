package config

import (
	"time"

	"github.com/stretchr/testify/mock"
)

var _ ServiceInterface = (*MockService)(nil)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetConfig() *Config {
	args := m.Called()
	return args.Get(0).(*Config)
}

func (m *MockService) BaseURL() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockService) RequestTimeout() (time.Duration, error) {
	args := m.Called()
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockService) Save() error {
	args := m.Called()
	return args.Error(0)
}
