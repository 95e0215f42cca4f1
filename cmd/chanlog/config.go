package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultDelimiter       = ":"
	defaultFallbackChannel = "default"

	severityLog   = "log"
	severityError = "error"
	severityDebug = "debug"
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	Channels        string `mapstructure:"channels"`
	Delimiter       string `mapstructure:"delimiter"`
	FallbackChannel string `mapstructure:"fallback-channel"`
	Severity        string `mapstructure:"severity"`
	Color           bool   `mapstructure:"color"`
	ConfigPath      string `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("CHANLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("channels", "")
	v.SetDefault("delimiter", defaultDelimiter)
	v.SetDefault("fallback-channel", defaultFallbackChannel)
	v.SetDefault("severity", severityLog)
	v.SetDefault("color", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "chanlog", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.Delimiter == "" {
		return cfg, errors.New("delimiter must not be empty")
	}
	switch cfg.Severity {
	case severityLog, severityError, severityDebug:
	default:
		return cfg, fmt.Errorf("invalid severity: %q (want log, error or debug)", cfg.Severity)
	}
	if strings.TrimSpace(cfg.FallbackChannel) == "" {
		return cfg, errors.New("fallback-channel must not be empty")
	}

	return cfg, nil
}
