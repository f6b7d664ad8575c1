package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReadConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	file := filepath.Join(t.TempDir(), "ocservctl.yml")
	require.NoError(t, os.WriteFile(file, []byte("api: https://vpn.example.com/api\nverbosity: 2\n"), 0o600))
	viper.SetConfigFile(file)
	viper.SetConfigType("yml")

	cfg, err := ReadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://vpn.example.com/api", cfg.API)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, DefaultAuthScheme, cfg.AuthScheme)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.True(t, strings.HasSuffix(cfg.TokenFile, "token.yml"))
}

func TestReadConfigMissingFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.SetConfigFile(filepath.Join(t.TempDir(), "missing.yml"))
	cfg, err := ReadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPI, cfg.API)
}

func TestWriteConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "ocservctl.yml")
	in := Config{API: "http://127.0.0.1/api", Timeout: 5, AuthScheme: "Bearer"}
	require.NoError(t, WriteConfig(file, &in))
	assert.True(t, FileExists(file))
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	out := Config{}
	require.NoError(t, yaml.NewDecoder(f).Decode(&out))
	assert.Equal(t, in, out)
}

func TestRequestTimeout(t *testing.T) {
	assert.Equal(t, float64(DefaultTimeout), (&Config{}).RequestTimeout().Seconds())
	assert.Equal(t, float64(7), (&Config{Timeout: 7}).RequestTimeout().Seconds())
}
