package skeleton

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/afaq-khan2000/auto-skeleton/analyzer"
)

// FileConfig is the YAML configuration surface: analysis knobs plus the
// generation options, as consumed by the CLI and the preview server.
type FileConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	MaxDepth      int           `yaml:"max_depth"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	KeepInvisible bool          `yaml:"keep_invisible"`
	Options       Options       `yaml:"options"`
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("skeleton: read config: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("skeleton: parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *FileConfig) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 10
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = 16 * time.Millisecond
	}
}

// AnalyzerConfig converts the file surface into an analyzer configuration.
func (c *FileConfig) AnalyzerConfig() analyzer.Config {
	return analyzer.Config{
		Timeout:       c.Timeout,
		MaxDepth:      c.MaxDepth,
		FrameInterval: c.FrameInterval,
		KeepInvisible: c.KeepInvisible,
		Ignore:        c.Options.IgnoreElements,
	}
}
