package config

import (
	"fmt"
	"time"
)

// Config represents the gdctl configuration
type Config struct {
	// DefaultTimeout is the wait window for ordinary commands
	DefaultTimeout Duration `yaml:"defaultTimeout"`
	// PollInterval is the sleep between result file checks
	PollInterval Duration `yaml:"pollInterval"`
	// MCP configures the MCP server
	MCP MCPConfig `yaml:"mcp"`
}

// MCPConfig represents MCP server configuration
type MCPConfig struct {
	Transport string     `yaml:"transport"`
	HTTP      HTTPConfig `yaml:"http,omitempty"`
}

// HTTPConfig represents HTTP transport configuration
type HTTPConfig struct {
	Port int        `yaml:"port"`
	Auth AuthConfig `yaml:"auth,omitempty"`
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Type   string `yaml:"type"`
	Bearer string `yaml:"bearer,omitempty"`
}

// DefaultConfig returns the default gdctl configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultTimeout: Duration(30 * time.Second),
		PollInterval:   Duration(100 * time.Millisecond),
		MCP: MCPConfig{
			Transport: "stdio",
			HTTP: HTTPConfig{
				Port: 3000,
			},
		},
	}
}

// Validate checks the configuration for values the bridge cannot work with
func (c *Config) Validate() error {
	if c.DefaultTimeout.Std() <= 0 {
		return fmt.Errorf("defaultTimeout must be positive")
	}
	if c.PollInterval.Std() <= 0 {
		return fmt.Errorf("pollInterval must be positive")
	}
	switch c.MCP.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("unsupported MCP transport: %s", c.MCP.Transport)
	}
	if c.MCP.Transport == "http" && c.MCP.HTTP.Port <= 0 {
		return fmt.Errorf("MCP HTTP port must be positive")
	}
	return nil
}
