package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ClientType represents an MCP client type
type ClientType string

const (
	// ClientCline represents the VS Code Cline extension
	ClientCline ClientType = "cline"
)

// ServerConfig represents an MCP server entry in a client's config file
type ServerConfig struct {
	Command     string            `json:"command"`
	Args        []string          `json:"args"`
	Env         map[string]string `json:"env"`
	Disabled    bool              `json:"disabled"`
	AutoApprove []string          `json:"autoApprove"`
}

// ClientConfig represents the structure of an MCP client's config file
type ClientConfig struct {
	MCPServers map[string]ServerConfig `json:"mcpServers"`
}

// GetClientConfigPath returns the path to the config file for the given client
func GetClientConfigPath(clientType ClientType) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch clientType {
	case ClientCline:
		settings := filepath.Join("Code", "User", "globalStorage", "saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json")
		switch runtime.GOOS {
		case "darwin":
			return filepath.Join(homeDir, "Library", "Application Support", settings), nil
		case "linux":
			return filepath.Join(homeDir, ".config", settings), nil
		case "windows":
			return filepath.Join(os.Getenv("APPDATA"), settings), nil
		default:
			return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
		}
	default:
		return "", fmt.Errorf("unsupported client type: %s", clientType)
	}
}

// ReadClientConfig reads the config file for the given client. A missing
// file yields an empty config.
func ReadClientConfig(clientType ClientType) (*ClientConfig, error) {
	configPath, err := GetClientConfigPath(clientType)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &ClientConfig{MCPServers: make(map[string]ServerConfig)}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ClientConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.MCPServers == nil {
		config.MCPServers = make(map[string]ServerConfig)
	}

	return &config, nil
}

// WriteClientConfig writes the config file for the given client
func WriteClientConfig(clientType ClientType, config *ClientConfig) error {
	configPath, err := GetClientConfigPath(clientType)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// InstallServer installs a server into the given client's config so the
// client launches it via `calctool run <server>`.
func InstallServer(clientType ClientType, serverName string) error {
	config, err := ReadClientConfig(clientType)
	if err != nil {
		return err
	}

	config.MCPServers[serverName] = ServerConfig{
		Command:     "calctool",
		Args:        []string{"run", serverName},
		Env:         make(map[string]string),
		Disabled:    false,
		AutoApprove: []string{},
	}

	return WriteClientConfig(clientType, config)
}
