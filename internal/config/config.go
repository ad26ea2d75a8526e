package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/samzong/gitcz/internal/commit"
)

// Config holds the user-tunable settings of the commit flow.
type Config struct {
	Types            []string `mapstructure:"types" yaml:"types"`
	MaxSubjectLength int      `mapstructure:"max_subject_length" yaml:"max_subject_length"`
	Signoff          bool     `mapstructure:"signoff" yaml:"signoff"`
	Accessible       bool     `mapstructure:"accessible" yaml:"accessible"`
}

const (
	DefaultConfigName = "config"
	DefaultConfigDir  = "gitcz"
	EnvPrefix         = "GITCZ"
)

// configPath is where SaveConfig writes; resolved by InitConfig.
var configPath string

// InitConfig loads configuration from cfgFile, or from the XDG config directory when
// cfgFile is empty. A missing file is not an error and is not created.
func InitConfig(cfgFile string) error {
	path, err := resolveConfigPath(cfgFile)
	if err != nil {
		return err
	}
	configPath = path

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("types", commit.DefaultTypes())
	viper.SetDefault("max_subject_length", commit.DefaultMaxSubjectLength)
	viper.SetDefault("signoff", false)
	viper.SetDefault("accessible", false)

	if err := viper.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) || isConfigNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	return nil
}

func isConfigNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

func resolveConfigPath(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, DefaultConfigDir, DefaultConfigName+".yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".config", DefaultConfigDir, DefaultConfigName+".yaml"), nil
}

// ConfigFilePath returns the file InitConfig resolved.
func ConfigFilePath() string {
	return configPath
}

// GetConfig returns the effective configuration with types normalized.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.Types = commit.NormalizeTypes(cfg.Types)
	if cfg.MaxSubjectLength <= 0 {
		cfg.MaxSubjectLength = commit.DefaultMaxSubjectLength
	}
	return cfg, nil
}

// SetConfigValue sets a configuration value in memory.
func SetConfigValue(key string, value any) {
	viper.Set(key, value)
}

// SaveConfig writes the current configuration to the resolved config file,
// creating its directory when needed.
func SaveConfig() error {
	if configPath == "" {
		return errors.New("configuration not initialized")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	if err := os.Chmod(configPath, 0o600); err != nil {
		return fmt.Errorf("failed to set configuration file permissions: %w", err)
	}
	return nil
}
