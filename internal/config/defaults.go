// Package config loads user-level defaults for the scaffold prompts.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for epscaffold configuration.
const envPrefix = "EPSCAFFOLD"

// Defaults holds prompt prefill values a user can persist in
// ~/.config/epscaffold/config.yaml or set via EPSCAFFOLD_* variables.
type Defaults struct {
	AuthorName  string `mapstructure:"author_name"`
	AuthorEmail string `mapstructure:"author_email"`
}

// WithFallbacks fills empty fields with the built-in prompt defaults.
func (d *Defaults) WithFallbacks() *Defaults {
	if d.AuthorName == "" {
		d.AuthorName = "yourname"
	}
	if d.AuthorEmail == "" {
		d.AuthorEmail = "your@mail.com"
	}
	return d
}

// Loader reads defaults from file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a configured loader. Environment variables take
// precedence over file values.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("author_name", "EPSCAFFOLD_AUTHOR_NAME")
	_ = v.BindEnv("author_email", "EPSCAFFOLD_AUTHOR_EMAIL")

	return &Loader{v: v}
}

// Load reads the defaults file at path, or the standard location when path
// is empty. A missing file is not an error.
func (l *Loader) Load(path string) (*Defaults, error) {
	if path == "" {
		var err error
		path, err = defaultConfigFile()
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
	}

	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var d Defaults
	if err := l.v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return d.WithFallbacks(), nil
}

func defaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "epscaffold", "config.yaml"), nil
}
