// Package config loads the optional verbump.yml file. Every setting has a
// default, so a bare checkout with no config at all is fully supported.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Defaults applied when the config file is absent or a field is unset.
const (
	DefaultCredentialsID = "git-credentials"
	DefaultUserName      = "Jenkins CI"
	DefaultUserEmail     = "jenkins@example.com"
	DefaultVersionFile   = "version.properties"
)

// Config is the root structure parsed from YAML.
type Config struct {
	Git         GitConfig `yaml:"git"`
	VersionFile string    `yaml:"version_file"`
}

// GitConfig holds the committer identity and the credential binding id.
type GitConfig struct {
	CredentialsID string `yaml:"credentials_id"`
	UserName      string `yaml:"user_name"`
	UserEmail     string `yaml:"user_email" validate:"omitempty,email"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from the provided path. When path is empty, it
// searches for verbump.yml or verbump.yaml in the current working
// directory; if none exists, defaults are returned. An explicit path that
// cannot be read is an error.
func Load(path string) (Config, error) {
	guessed, found, err := resolveConfigPath(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{}
	if found {
		b, err := os.ReadFile(guessed)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(b), yaml.Validator(validate), yaml.Strict())
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml: %s", yaml.FormatError(err, true, true))
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", false, fmt.Errorf("stat %s: %w", path, err)
		}
		return path, true, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("getwd: %w", err)
	}
	for _, name := range []string{"verbump.yml", "verbump.yaml"} {
		candidate := filepath.Join(cwd, name)
		_, statErr := os.Stat(candidate)
		if statErr == nil {
			return candidate, true, nil
		}
		if errors.Is(statErr, fs.ErrNotExist) {
			continue
		}
		return "", false, fmt.Errorf("stat %s: %w", candidate, statErr)
	}
	return "", false, nil
}

func (c *Config) applyDefaults() {
	if c.Git.CredentialsID == "" {
		c.Git.CredentialsID = DefaultCredentialsID
	}
	if c.Git.UserName == "" {
		c.Git.UserName = DefaultUserName
	}
	if c.Git.UserEmail == "" {
		c.Git.UserEmail = DefaultUserEmail
	}
	if c.VersionFile == "" {
		c.VersionFile = DefaultVersionFile
	}
}
