// Package config loads runtime settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/arthur-debert/nanotasks/formats"
)

// EnvPrefix prefixes every environment variable (NANOTASKS_FORMAT, ...)
const EnvPrefix = "NANOTASKS"

// Keys
const (
	KeyFormat          = "format"
	KeyLogLevel        = "log_level"
	KeyLogStderr       = "log_stderr"
	KeyLogDir          = "log_dir"
	KeyAddr            = "addr"
	KeyExportDir       = "export_dir"
	KeyStrictDeadlines = "strict_deadlines"
	KeyLockTimeout     = "lock_timeout"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config holds the resolved settings
type Config struct {
	Format          string        `mapstructure:"format"`
	LogLevel        string        `mapstructure:"log_level"`
	LogStderr       bool          `mapstructure:"log_stderr"`
	LogDir          string        `mapstructure:"log_dir"`
	Addr            string        `mapstructure:"addr"`
	ExportDir       string        `mapstructure:"export_dir"`
	StrictDeadlines bool          `mapstructure:"strict_deadlines"`
	LockTimeout     time.Duration `mapstructure:"lock_timeout"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Format:      formats.PlainText.Name,
		LogLevel:    "warn",
		LogDir:      defaultLogDir(),
		Addr:        ":8080",
		ExportDir:   ".",
		LockTimeout: 2 * time.Second,
	}
}

// New returns a viper instance with defaults, environment binding and
// config file discovery set up. The config file is read if present.
func New() (*viper.Viper, error) {
	v := viper.New()

	d := Default()
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogStderr, d.LogStderr)
	v.SetDefault(KeyLogDir, d.LogDir)
	v.SetDefault(KeyAddr, d.Addr)
	v.SetDefault(KeyExportDir, d.ExportDir)
	v.SetDefault(KeyStrictDeadlines, d.StrictDeadlines)
	v.SetDefault(KeyLockTimeout, d.LockTimeout)

	// NANOTASKS_CONFIG points at an explicit file
	if configFile := os.Getenv(EnvPrefix + "_CONFIG"); configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("nanotasks")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.nanotasks")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}

// BindFlags binds command-line flags to config keys. Flag names use dashes
// (--log-level) and map onto the underscore keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// Load resolves and validates the settings held by v
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if !logLevels[cfg.LogLevel] {
		return Config{}, fmt.Errorf("invalid %s %q (want debug, info, warn or error)", KeyLogLevel, cfg.LogLevel)
	}
	if _, err := formats.Get(cfg.Format); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyFormat, err)
	}
	if cfg.LockTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid %s %s: must be positive", KeyLockTimeout, cfg.LockTimeout)
	}

	return cfg, nil
}

// defaultLogDir returns the XDG cache directory for nanotasks
func defaultLogDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "nanotasks")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "nanotasks")
	}

	if runtime.GOOS == "darwin" {
		return filepath.Join(homeDir, "Library", "Caches", "nanotasks")
	}
	return filepath.Join(homeDir, ".cache", "nanotasks")
}
