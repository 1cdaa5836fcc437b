package main

import (
	"context"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"pkg.world.dev/usermgr/internal/app/usermgr/commands/user"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
	"pkg.world.dev/usermgr/internal/app/usermgr/services/config"
	"pkg.world.dev/usermgr/internal/app/usermgr/services/input"
)

type RootTestSuite struct {
	suite.Suite
}

func TestRootSuite(t *testing.T) {
	suite.Run(t, new(RootTestSuite))
}

func (s *RootTestSuite) createTestDependencies() (*Dependencies, *config.MockService, *user.MockHandler) {
	mockConfig := &config.MockService{}
	mockHandler := &user.MockHandler{}
	deps := &Dependencies{
		ConfigService: mockConfig,
		InputService:  &input.MockService{},
		UserHandler:   mockHandler,
	}
	return deps, mockConfig, mockHandler
}

// runCLI parses args and runs the selected command against deps.
func (s *RootTestSuite) runCLI(deps *Dependencies, args ...string) error {
	var cli CLI
	parser, err := newParser(&cli, kong.Exit(func(int) {}))
	s.Require().NoError(err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	kctx.BindTo(context.Background(), (*context.Context)(nil))
	return kctx.Run(deps)
}

func (s *RootTestSuite) TestNoArgsRunsUI() {
	deps, _, mockHandler := s.createTestDependencies()
	mockHandler.On("UI", mock.Anything).Return(nil).Once()

	s.Require().NoError(s.runCLI(deps))
	mockHandler.AssertExpectations(s.T())
}

func (s *RootTestSuite) TestList() {
	deps, mockConfig, mockHandler := s.createTestDependencies()
	mockConfig.On("BaseURL").Return("http://localhost:3000", nil)
	mockHandler.On("List", mock.Anything).Return(nil).Once()

	s.Require().NoError(s.runCLI(deps, "list", "-v"))
	mockHandler.AssertExpectations(s.T())
}

func (s *RootTestSuite) TestAdd() {
	deps, _, mockHandler := s.createTestDependencies()
	flags := models.AddUserFlags{Name: "Ada", Email: "ada@example.com"}
	mockHandler.On("Add", mock.Anything, flags).Return(nil).Once()

	s.Require().NoError(s.runCLI(deps, "add", "--name", "Ada", "--email", "ada@example.com"))
	mockHandler.AssertExpectations(s.T())
}

func (s *RootTestSuite) TestAddRequiresFlags() {
	deps, _, mockHandler := s.createTestDependencies()

	s.Require().Error(s.runCLI(deps, "add", "--name", "Ada"))
	mockHandler.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
}

func (s *RootTestSuite) TestEdit() {
	deps, _, mockHandler := s.createTestDependencies()
	flags := models.EditUserFlags{ID: "u1", Email: "ada@example.org"}
	mockHandler.On("Edit", mock.Anything, flags).Return(nil).Once()

	s.Require().NoError(s.runCLI(deps, "edit", "u1", "--email", "ada@example.org"))
	mockHandler.AssertExpectations(s.T())
}

func (s *RootTestSuite) TestDelete() {
	deps, _, mockHandler := s.createTestDependencies()
	mockHandler.On("Delete", mock.Anything, models.DeleteUserFlags{ID: "u1", Yes: true}).Return(nil).Once()
	mockHandler.On("Delete", mock.Anything, models.DeleteUserFlags{ID: "u2"}).Return(nil).Once()

	s.Require().NoError(s.runCLI(deps, "delete", "u1", "-y"))
	s.Require().NoError(s.runCLI(deps, "delete", "u2"))
	mockHandler.AssertExpectations(s.T())
}

func (s *RootTestSuite) TestConfigSaves() {
	deps, mockConfig, _ := s.createTestDependencies()
	cfg := &config.Config{}
	mockConfig.On("GetConfig").Return(cfg)
	mockConfig.On("Save").Return(nil).Once()

	err := s.runCLI(deps, "config", "--url", "http://localhost:3000/", "--timeout", "5s", "--max-retries", "2")
	s.Require().NoError(err)
	s.Equal(config.Config{BaseURL: "http://localhost:3000", Timeout: "5s", MaxRetries: 2}, *cfg)
	mockConfig.AssertExpectations(s.T())
}

func (s *RootTestSuite) TestConfigShowOnly() {
	deps, mockConfig, _ := s.createTestDependencies()
	mockConfig.On("GetConfig").Return(&config.Config{BaseURL: "http://localhost:3000"})

	s.Require().NoError(s.runCLI(deps, "config"))
	mockConfig.AssertNotCalled(s.T(), "Save")
}

func (s *RootTestSuite) TestConfigRejectsBadInput() {
	deps, mockConfig, _ := s.createTestDependencies()
	mockConfig.On("GetConfig").Return(&config.Config{})

	err := s.runCLI(deps, "config", "--timeout", "soon")
	s.Require().ErrorIs(err, config.ErrInvalidTimeout)

	err = s.runCLI(deps, "config", "--url", "localhost:3000")
	s.Require().Error(err)
	mockConfig.AssertNotCalled(s.T(), "Save")
}

func (s *RootTestSuite) TestVersion() {
	deps, _, _ := s.createTestDependencies()
	s.Require().NoError(s.runCLI(deps, "version"))
}

func (s *RootTestSuite) TestUsersWithoutBaseURL() {
	mockConfig := &config.MockService{}
	mockConfig.On("BaseURL").Return("", config.ErrNoBaseURL)
	deps := &Dependencies{ConfigService: mockConfig}

	_, err := deps.Users()
	s.Require().ErrorIs(err, config.ErrNoBaseURL)

	s.Require().ErrorIs(s.runCLI(deps, "list"), config.ErrNoBaseURL)
}

func (s *RootTestSuite) TestUsersBuildsHandlerOnce() {
	mockConfig := &config.MockService{}
	mockConfig.On("BaseURL").Return("http://localhost:3000", nil).Once()
	mockConfig.On("RequestTimeout").Return(5*time.Second, nil).Once()
	mockConfig.On("GetConfig").Return(&config.Config{MaxRetries: 2}).Once()
	deps := &Dependencies{ConfigService: mockConfig, InputService: &input.MockService{}}

	first, err := deps.Users()
	s.Require().NoError(err)
	s.Require().NotNil(first)

	second, err := deps.Users()
	s.Require().NoError(err)
	s.Same(first, second)
	mockConfig.AssertExpectations(s.T())
}
