package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level habitr configuration.
type Config struct {
	DBPath    string `mapstructure:"db_path"`
	LogPath   string `mapstructure:"log_path"`
	LogLevel  string `mapstructure:"log_level"`
	ExportDir string `mapstructure:"export_dir"`
	NoColor   bool   `mapstructure:"no_color"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// Load reads configuration from cfgFile (or the default location), layers
// HABITR_* environment variables on top and applies defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	dir := ConfigDir()
	v.SetDefault("db_path", filepath.Join(dir, DefaultDBName))
	v.SetDefault("log_path", filepath.Join(dir, DefaultLogName))
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("export_dir", DefaultExportDir)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// A missing config file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.LogPath = expandPath(cfg.LogPath)
	cfg.ExportDir = expandPath(cfg.ExportDir)
	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
