package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "flatdb.yaml"

// Config supplies defaults for the global flags. Flags set on the command
// line always win.
type Config struct {
	DB       string `yaml:"db"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// LoadConfig reads the config file at path. A missing file is not an
// error; it yields a zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
