package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/common/tomlutil"
	"pkg.world.dev/usermgr/internal/pkg/logger"
)

const (
	BaseURLEnvVariable = "USERMGR_BASE_URL"
	ConfigEnvVariable  = "USERMGR_CONFIG_FILE"

	configDir       = ".usermgr"
	defaultFileName = "config.toml"
)

var (
	ErrNoBaseURL      = eris.New("no API base URL configured (use --base-url, " + BaseURLEnvVariable + " or `usermgr config --url`)")
	ErrInvalidTimeout = eris.New("invalid timeout")
)

//nolint:gochecknoglobals // overridden in tests
var GetCLIConfigDir = func() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configDir), nil
}

// NewService loads the config from path, or from the default location when path is empty.
// A missing file yields an empty config. baseURLFlag, when set, wins over the environment.
func NewService(path, baseURLFlag string) (ServiceInterface, error) {
	service := &Service{Path: path}

	if service.Path == "" {
		service.Path = os.Getenv(ConfigEnvVariable)
	}
	if service.Path == "" {
		fullConfigDir, err := GetCLIConfigDir()
		if err != nil {
			return nil, eris.Wrap(err, "failed get config dir")
		}
		service.Path = filepath.Join(fullConfigDir, defaultFileName)
	}

	if err := service.load(); err != nil {
		return nil, eris.Wrap(err, "failed to get config")
	}

	service.BaseURLOverride = os.Getenv(BaseURLEnvVariable)
	if baseURLFlag != "" {
		service.BaseURLOverride = baseURLFlag
	}

	return service, nil
}

func (s *Service) GetConfig() *Config {
	return &s.Config
}

func (s *Service) BaseURL() (string, error) {
	baseURL := s.Config.BaseURL
	if s.BaseURLOverride != "" {
		baseURL = s.BaseURLOverride
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", ErrNoBaseURL
	}
	return baseURL, nil
}

func (s *Service) RequestTimeout() (time.Duration, error) {
	if s.Config.Timeout == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(s.Config.Timeout)
	if err != nil || timeout < 0 {
		return 0, eris.Wrapf(ErrInvalidTimeout, "timeout %q", s.Config.Timeout)
	}
	return timeout, nil
}

func (s *Service) Save() error {
	if err := tomlutil.WriteTOML(s.Path, s.Config); err != nil {
		return eris.Wrap(err, "failed to save config")
	}
	logger.Debugf("config saved to %s", s.Path)
	return nil
}

func (s *Service) load() error {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil // this is ok, just create empty config
	}

	var config Config
	if err := tomlutil.ReadTOML(s.Path, &config); err != nil {
		logger.Errors(err)
		return err
	}

	s.Config = config
	return nil
}
