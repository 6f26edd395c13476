// Package config loads and saves per-server configuration files under
// ~/.config/calctool/<server>/config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the name of the config directory
	ConfigDirName = "calctool"

	// DefaultConfigFileName is the default name for config files
	DefaultConfigFileName = "config.json"

	// DefaultGCCPath is the compiler used when no config file overrides it
	DefaultGCCPath = "gcc"

	// DefaultObjdumpPath is the disassembler used when no config file overrides it
	DefaultObjdumpPath = "objdump"
)

// Config represents the configuration for a calctool server
type Config struct {
	// GCCPath is the C compiler binary used by the ctools server
	GCCPath string `json:"gcc_path,omitempty"`

	// ObjdumpPath is the disassembler binary used by the ctools server
	ObjdumpPath string `json:"objdump_path,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		GCCPath:     DefaultGCCPath,
		ObjdumpPath: DefaultObjdumpPath,
	}
}

// GetConfigDir returns the path to the configuration directory for a server
func GetConfigDir(serverName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", ConfigDirName, serverName), nil
}

// GetConfigFilePath returns the path to the configuration file for a server
func GetConfigFilePath(serverName string) (string, error) {
	configDir, err := GetConfigDir(serverName)
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, DefaultConfigFileName), nil
}

// Load loads the configuration for a server. A missing config file is not an
// error: the defaults are returned so servers work out of the box.
func Load(serverName string) (*Config, error) {
	configPath, err := GetConfigFilePath(serverName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Empty fields fall back to defaults
	if config.GCCPath == "" {
		config.GCCPath = DefaultGCCPath
	}
	if config.ObjdumpPath == "" {
		config.ObjdumpPath = DefaultObjdumpPath
	}

	return config, nil
}

// Save saves the configuration for a server
func Save(serverName string, config *Config) error {
	configDir, err := GetConfigDir(serverName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(configDir, DefaultConfigFileName)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
