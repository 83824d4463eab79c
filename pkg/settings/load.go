package settings

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file over Default. Keys missing from the file keep
// their default values. An empty path returns Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted later.
func (c *Config) Validate() error {
	if c.Queue.RingCapacity < 0 {
		return errors.Errorf("queue.ring_capacity must not be negative, got %d", c.Queue.RingCapacity)
	}
	if c.Queue.Shapes < 0 {
		return errors.Errorf("queue.shapes must not be negative, got %d", c.Queue.Shapes)
	}
	return nil
}
