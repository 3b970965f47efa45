package orion

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings used to build a Context.
// Zero values of Title, Width, Height, Scale and TickRate
// are replaced by their defaults.
type Config struct {
	Title string `yaml:"title"`

	// logical size of the render target in pixels
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// integer scale between logical pixels and window pixels
	Scale int `yaml:"scale"`

	VSync        bool `yaml:"vsync"`
	QuitOnEscape bool `yaml:"quit_on_escape"`

	// duration of one simulation tick
	TickRate time.Duration `yaml:"tick_rate"`

	// limit of simulation ticks per loop iteration, zero for no limit
	MaxTicksPerIteration int `yaml:"max_ticks_per_iteration"`
}

func DefaultConfig() Config {
	return Config{
		Title:  "Tempo",
		Width:  1280,
		Height: 720,
		Scale:  1,
		VSync:  true,

		TickRate: time.Second / 60,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()

	if c.Title == "" {
		c.Title = defaults.Title
	}

	if c.Width == 0 {
		c.Width = defaults.Width
	}

	if c.Height == 0 {
		c.Height = defaults.Height
	}

	if c.Scale == 0 {
		c.Scale = defaults.Scale
	}

	if c.TickRate == 0 {
		c.TickRate = defaults.TickRate
	}

	return c
}

// Validate checks the config for values that can not be fixed by applying defaults.
func (c Config) Validate() error {
	var errs []error

	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("size must not be negative, got %dx%d", c.Width, c.Height))
	}

	if c.Scale < 0 {
		errs = append(errs, fmt.Errorf("scale must not be negative, got %d", c.Scale))
	}

	if c.TickRate < 0 {
		errs = append(errs, fmt.Errorf("tick rate must not be negative, got %s", c.TickRate))
	}

	if c.MaxTicksPerIteration < 0 {
		errs = append(errs, fmt.Errorf("max ticks per iteration must not be negative, got %d", c.MaxTicksPerIteration))
	}

	return errors.Join(errs...)
}

// ParseConfig reads a yaml document on top of the DefaultConfig.
// Fields not present in the document keep their default value,
// unknown fields are an error.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return config.withDefaults(), nil
}

// LoadConfig reads the config from a yaml file, see ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	return ParseConfig(data)
}
