package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Profile holds publish defaults for one app, read from a TOML or YAML file
type Profile struct {
	AppName      string `toml:"app_name" yaml:"app_name"`
	PackageName  string `toml:"package_name" yaml:"package_name"`
	Track        string `toml:"track" yaml:"track"`
	Status       string `toml:"status" yaml:"status"`
	KeyFile      string `toml:"key_file" yaml:"key_file"`
	LanguageCode string `toml:"language" yaml:"language"`
}

// LoadProfile reads a profile. The format follows the extension (.toml,
// .yaml, .yml). A relative key_file is resolved against the profile's
// directory.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read profile", goerr.V("path", path))
	}

	var profile Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&profile); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML profile", goerr.V("path", path))
		}
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&profile); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML profile", goerr.V("path", path))
		}
	default:
		return nil, goerr.New("unsupported profile format", goerr.V("path", path))
	}

	if profile.KeyFile != "" && !filepath.IsAbs(profile.KeyFile) {
		profile.KeyFile = filepath.Join(filepath.Dir(path), profile.KeyFile)
	}
	return &profile, nil
}
