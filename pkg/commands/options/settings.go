package options

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/weekly/pkg/api"
	"tableflip.dev/weekly/pkg/config"
	"tableflip.dev/weekly/pkg/logging"
)

// Settings resolves the configuration shared by every command. Flags bound
// here override WEEKLY_* variables and the config file.
type Settings struct {
	v   *viper.Viper
	cfg *config.Config
}

func NewSettings() *Settings {
	return &Settings{v: viper.New()}
}

func AddSettingsArgs(cmd *cobra.Command, s *Settings) {
	flags := cmd.PersistentFlags()
	flags.String("api-url", "", "Base URL of the to do API (default http://localhost:8080).")
	flags.Duration("timeout", 0, "Timeout for each API request (default 10s).")
	flags.String("theme", "", "Theme for the UI: auto, light or dark.")
	flags.String("log-level", "", "Log level: debug, info, warn or error.")
	flags.String("log-file", "", "File the UI logs to (default ~/.weekly/weekly.log).")

	_ = s.v.BindPFlag(config.KeyAPIURL, flags.Lookup("api-url"))
	_ = s.v.BindPFlag(config.KeyTimeout, flags.Lookup("timeout"))
	_ = s.v.BindPFlag(config.KeyTheme, flags.Lookup("theme"))
	_ = s.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = s.v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
}

func AddServeArgs(cmd *cobra.Command, s *Settings) {
	cmd.Flags().String("addr", "", "Listen address (default :8080).")
	cmd.Flags().String("data", "", "Directory holding the to dos (default ~/.weekly/data).")

	_ = s.v.BindPFlag(config.KeyServeAddr, cmd.Flags().Lookup("addr"))
	_ = s.v.BindPFlag(config.KeyServeData, cmd.Flags().Lookup("data"))
}

// Config loads the configuration once.
func (s *Settings) Config() (*config.Config, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}
	cfg, err := config.Load(s.v)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	return cfg, nil
}

// Remote returns an API client for the configured server.
func (s *Settings) Remote() (api.Remote, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	return api.New(cfg.APIURL, cfg.Timeout), nil
}

// Logger returns a logger writing to w at the configured level.
func (s *Settings) Logger(w io.Writer) (*log.Logger, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	return logging.New(w, cfg.LogLevel)
}

// FileLogger returns a logger appending to the configured log file.
func (s *Settings) FileLogger() (*log.Logger, io.Closer, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, nil, err
	}
	return logging.OpenFile(cfg.LogFile, cfg.LogLevel)
}
