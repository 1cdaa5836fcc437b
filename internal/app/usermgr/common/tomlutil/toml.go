package tomlutil

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
)

// ReadTOML reads a TOML file and unmarshals it into the provided interface.
func ReadTOML(path string, v interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "failed to read TOML file at '%s'", path)
	}

	if err := toml.Unmarshal(content, v); err != nil {
		return eris.Wrapf(err, "failed to parse TOML file at '%s'", path)
	}

	return nil
}

// WriteTOML marshals the provided interface and writes it to a TOML file,
// creating parent directories as needed.
func WriteTOML(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd // standard dir perms
		return eris.Wrapf(err, "failed to create directory for '%s'", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) //nolint:mnd // config is user private
	if err != nil {
		return eris.Wrapf(err, "failed to create TOML file at '%s'", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(v); err != nil {
		return eris.Wrap(err, "failed to write TOML file")
	}

	return nil
}
