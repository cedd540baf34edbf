package translator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a translation run
type Config struct {
	Module      string `yaml:"module,omitempty"`      // translation unit name; defaults to the detected project name
	Output      string `yaml:"output,omitempty"`      // output location; defaults to <project>/Swift
	Concurrency int    `yaml:"concurrency,omitempty"` // parallel emission width
	Verbose     bool   `yaml:"verbose,omitempty"`
}

// LoadConfig reads a YAML config file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	config.Init()
	return config, nil
}

// Init applies defaults
func (c *Config) Init() {
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
}
