package main

import (
	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/clients/api"
	"pkg.world.dev/usermgr/internal/app/usermgr/commands/user"
	"pkg.world.dev/usermgr/internal/app/usermgr/interfaces"
	"pkg.world.dev/usermgr/internal/app/usermgr/manager"
	"pkg.world.dev/usermgr/internal/app/usermgr/services/config"
	"pkg.world.dev/usermgr/internal/app/usermgr/services/input"
	"pkg.world.dev/usermgr/internal/pkg/logger"
)

// Dependencies holds all initialized services and handlers.
type Dependencies struct {
	ConfigService config.ServiceInterface
	InputService  input.ServiceInterface
	UserHandler   interfaces.UserHandler
}

func newDependencies(configPath, baseURL string) (*Dependencies, error) {
	configService, err := config.NewService(configPath, baseURL)
	if err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}

	return &Dependencies{
		ConfigService: configService,
		InputService:  input.NewService(),
	}, nil
}

// Users returns the user handler, building it on first use. Commands that never
// talk to the API do not need a base URL.
func (d *Dependencies) Users() (interfaces.UserHandler, error) {
	if d.UserHandler != nil {
		return d.UserHandler, nil
	}

	baseURL, err := d.ConfigService.BaseURL()
	if err != nil {
		return nil, err
	}
	timeout, err := d.ConfigService.RequestTimeout()
	if err != nil {
		return nil, err
	}

	reqConfig := api.DefaultRequestConfig()
	reqConfig.Timeout = timeout
	reqConfig.MaxRetries = max(d.ConfigService.GetConfig().MaxRetries, 0)

	logger.DebugWithFields("user API client", map[string]interface{}{
		"base_url":    baseURL,
		"timeout":     timeout.String(),
		"max_retries": reqConfig.MaxRetries,
	})

	client := api.NewClient(baseURL, reqConfig)
	d.UserHandler = user.NewHandler(manager.New(client), d.InputService)
	return d.UserHandler, nil
}
