package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"trainlock/internal/util"
)

// Config holds the complete application configuration.
type Config struct {
	DataDir string        `mapstructure:"data_dir"`
	Gist    GistConfig    `mapstructure:"gist"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GistConfig defines the remote sync target. Token may also come from the
// TRAINLOCK_GIST_TOKEN environment variable so it stays out of the file.
type GistConfig struct {
	ID       string `mapstructure:"id"`
	Token    string `mapstructure:"token"`
	FileName string `mapstructure:"file_name"`
	BaseURL  string `mapstructure:"base_url"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DBPath is the sqlite file inside the resolved data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}

// SyncConfigured reports whether a remote gist is set up at all.
func (c *Config) SyncConfigured() bool {
	return strings.TrimSpace(c.Gist.ID) != ""
}

// Load reads configuration from the given file (or the default location when
// path is empty), layered under TRAINLOCK_* environment variables. A missing
// config file is fine; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", util.DataDir(AppName))
	v.SetDefault("gist.file_name", GistFileName)
	v.SetDefault("gist.base_url", GistAPIBaseURL)
	v.SetDefault("logging.level", "error")

	v.SetEnvPrefix("TRAINLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(util.ConfigDir(AppName))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
