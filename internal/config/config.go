package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// MaxResultsCeiling is the hard cap on published matches. Config may lower
// the limit but never raise it past this.
const MaxResultsCeiling = 100

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	MaxResults int        `toml:"max_results"`
	Matcher    string     `toml:"matcher"` // "fzf" or "sahilm"
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	HighlightColor  string `toml:"highlight_color"`
	SelectionColor  string `toml:"selection_color"`
	ShowLineNumbers bool   `toml:"show_line_numbers"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	scrollseekDir := filepath.Join(configDir, "scrollseek")
	os.MkdirAll(scrollseekDir, 0755)

	return &configService{
		filePath: filepath.Join(scrollseekDir, "config.toml"),
	}
}

// Load loads the configuration from the default path, returning defaults
// when no file exists yet
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize fills gaps left by hand-edited or older config files
func (c *Config) normalize() {
	if c.MaxResults <= 0 || c.MaxResults > MaxResultsCeiling {
		c.MaxResults = MaxResultsCeiling
	}
	if c.Matcher == "" {
		c.Matcher = "fzf"
	}
	if c.UISettings.HighlightColor == "" {
		c.UISettings.HighlightColor = DefaultConfig().UISettings.HighlightColor
	}
	if c.UISettings.SelectionColor == "" {
		c.UISettings.SelectionColor = DefaultConfig().UISettings.SelectionColor
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		MaxResults: MaxResultsCeiling,
		Matcher:    "fzf",
		UISettings: UISettings{
			HighlightColor:  "203", // red, as the original painted matched cells
			SelectionColor:  "238",
			ShowLineNumbers: true,
		},
	}
}
