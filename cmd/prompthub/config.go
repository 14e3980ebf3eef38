// Config loading for the prompthub CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/prompthub/internal/log"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir   = "data_dir"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeyLogFile   = "log_file"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# prompthub configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Logging (optional; overridable by PROMPTHUB_LOG_* env vars)
# log_level: info
# log_format: console
# log_file:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run; a missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if absent.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// initLogging configures the application logger from config values;
// PROMPTHUB_LOG_* environment variables win over the config file.
func initLogging(v *viper.Viper) {
	opts := log.Options{
		Level:  v.GetString(cfgKeyLogLevel),
		Format: v.GetString(cfgKeyLogFormat),
		File:   v.GetString(cfgKeyLogFile),
	}
	env := log.FromEnv()
	if env.Level != "" {
		opts.Level = env.Level
	}
	if env.Format != "" {
		opts.Format = env.Format
	}
	if env.File != "" {
		opts.File = env.File
	}
	log.Init(opts)
}
