// Package config resolves weekly's settings from flags, WEEKLY_* environment
// variables and an optional .weekly.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys understood by Load. Flags bound to the same names win over the file.
const (
	KeyAPIURL    = "api_url"
	KeyTimeout   = "timeout"
	KeyTheme     = "theme"
	KeyLogFile   = "log_file"
	KeyLogLevel  = "log_level"
	KeyServeAddr = "serve.addr"
	KeyServeData = "serve.data"
)

// Theme names accepted by the theme key.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds the resolved settings.
type Config struct {
	APIURL    string
	Timeout   time.Duration
	Theme     string
	LogFile   string
	LogLevel  string
	ServeAddr string
	ServeData string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, "http://localhost:8080")
	v.SetDefault(KeyTimeout, 10*time.Second)
	v.SetDefault(KeyTheme, ThemeAuto)
	v.SetDefault(KeyLogFile, "~/.weekly/weekly.log")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyServeAddr, ":8080")
	v.SetDefault(KeyServeData, "~/.weekly/data")
}

// Load reads the optional config file into v and returns the resolved
// Config. A missing file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetConfigName(".weekly") // .yaml is implicit
	v.SetEnvPrefix("WEEKLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("WEEKLY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if dir, err := homedir.Expand("~/.config/weekly"); err == nil {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}
	return FromViper(v)
}

// FromViper resolves a Config from values already present in v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		APIURL:    strings.TrimSpace(v.GetString(KeyAPIURL)),
		Timeout:   v.GetDuration(KeyTimeout),
		Theme:     strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
		LogLevel:  v.GetString(KeyLogLevel),
		ServeAddr: v.GetString(KeyServeAddr),
	}
	if cfg.APIURL == "" {
		return nil, errors.New("config: api_url is required")
	}
	switch cfg.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return nil, fmt.Errorf("config: unknown theme %q (want auto, light or dark)", cfg.Theme)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("config: negative timeout %s", cfg.Timeout)
	}

	var err error
	if cfg.LogFile, err = expand(v.GetString(KeyLogFile)); err != nil {
		return nil, err
	}
	if cfg.ServeData, err = expand(v.GetString(KeyServeData)); err != nil {
		return nil, err
	}
	return cfg, nil
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	out, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("config: expand %q: %w", path, err)
	}
	return out, nil
}
