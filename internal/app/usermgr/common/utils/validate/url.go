package validate

import (
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
)

// BaseURL checks that raw is an absolute http(s) URL with a host.
func BaseURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return eris.New("base URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return eris.Wrap(err, "invalid base URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return eris.Errorf("base URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return eris.New("base URL must include a host")
	}
	return nil
}
