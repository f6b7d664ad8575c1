// Package config provides functions for reading the config.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// AppName - directory and file prefix used for configuration
const AppName = "ocservctl"

// DefaultAPI - api root used when none is configured
const DefaultAPI = "http://localhost:8000/api"

// DefaultTimeout - http timeout in seconds
const DefaultTimeout = 30

// DefaultAuthScheme - prefix of the token in the Authorization header
const DefaultAuthScheme = "Token"

// Current is the configuration loaded at startup
var Current Config

// Config holds the client settings
type Config struct {
	API        string `yaml:"api" mapstructure:"api"`
	Verbosity  int    `yaml:"verbosity" mapstructure:"verbosity"`
	Timeout    int    `yaml:"timeout" mapstructure:"timeout"`
	AuthScheme string `yaml:"authscheme" mapstructure:"authscheme"`
	TokenFile  string `yaml:"tokenfile" mapstructure:"tokenfile"`
}

// SetDefaults registers default values with viper
func SetDefaults() {
	viper.SetDefault("api", DefaultAPI)
	viper.SetDefault("verbosity", 0)
	viper.SetDefault("timeout", DefaultTimeout)
	viper.SetDefault("authscheme", DefaultAuthScheme)
	viper.SetDefault("tokenfile", filepath.Join(GetConfigPath(), "token.yml"))
}

// ReadConfig reads a configuration file and returns it as an
// instance. A missing configuration file is not an error; defaults and
// environment are used instead.
func ReadConfig() (*Config, error) {
	SetDefaults()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RequestTimeout returns the configured http timeout
func (c *Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// WriteConfig writes cfg to file
func WriteConfig(file string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := yaml.NewEncoder(f).Encode(cfg); err != nil {
		return err
	}
	return f.Sync()
}

// GetConfigPath - gets the ocservctl config directory
func GetConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName)
}

// FileExists - checks if a file exists on disk
func FileExists(f string) bool {
	info, err := os.Stat(f)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
