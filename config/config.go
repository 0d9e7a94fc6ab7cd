// Package config loads teatime settings from YAML or TOML files, a .env file
// and TEATIME_* environment variables, in that order of increasing precedence
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/teatime/audio"
	"github.com/lixenwraith/teatime/constants"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML
var ErrUnknownFormat = errors.New("unknown config format")

// Config is the full application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
	Display DisplayConfig `yaml:"display" toml:"display"`
	Debug   bool          `yaml:"debug" toml:"debug"`
}

// StorageConfig selects where the bubble collection is kept
type StorageConfig struct {
	Path   string `yaml:"path" toml:"path"`
	Format string `yaml:"format" toml:"format"` // "json", "yaml" or empty to follow the extension
}

// AudioConfig holds chime settings
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" toml:"enabled"`
	Volume       float64 `yaml:"volume" toml:"volume"`
	Chime        string  `yaml:"chime" toml:"chime"` // "bell" or a .wav/.mp3 path
	ReplayQueued bool    `yaml:"replay_queued" toml:"replay_queued"`
	SampleRate   int     `yaml:"sample_rate" toml:"sample_rate"`
	QueueSize    int     `yaml:"queue_size" toml:"queue_size"`
}

// DisplayConfig holds terminal rendering settings
type DisplayConfig struct {
	FrameIntervalMs int     `yaml:"frame_interval_ms" toml:"frame_interval_ms"`
	CellAspect      float64 `yaml:"cell_aspect" toml:"cell_aspect"`
	ColorMode       string  `yaml:"color_mode" toml:"color_mode"` // auto, truecolor, 256
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	def := audio.DefaultAudioConfig()
	return &Config{
		Storage: StorageConfig{
			Path: "teatime.json",
		},
		Audio: AudioConfig{
			Enabled:      def.Enabled,
			Volume:       def.Volume,
			Chime:        audio.ResourceBell,
			ReplayQueued: def.ReplayQueued,
			SampleRate:   def.SampleRate,
			QueueSize:    def.QueueSize,
		},
		Display: DisplayConfig{
			FrameIntervalMs: int(constants.FrameUpdateInterval / time.Millisecond),
			CellAspect:      constants.DefaultCellAspect,
			ColorMode:       "auto",
		},
	}
}

// Load reads a config file over the defaults
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	return cfg, nil
}

// Save writes the config in the format implied by the extension
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		data, err = toml.Marshal(c)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate clamps numeric fields into range and rejects unknown enum values
func (c *Config) Validate() error {
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	} else if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = constants.DefaultSampleRate
	}
	if c.Audio.QueueSize <= 0 {
		c.Audio.QueueSize = constants.ChimeQueueSize
	}
	if c.Audio.Chime == "" {
		c.Audio.Chime = audio.ResourceBell
	}

	minMs := int(constants.MinFrameInterval / time.Millisecond)
	if c.Display.FrameIntervalMs < minMs {
		c.Display.FrameIntervalMs = minMs
	}
	if !(c.Display.CellAspect > 0) {
		c.Display.CellAspect = constants.DefaultCellAspect
	}

	switch c.Display.ColorMode {
	case "", "auto", "truecolor", "256":
	default:
		return fmt.Errorf("display.color_mode %q: must be auto, truecolor or 256", c.Display.ColorMode)
	}

	switch c.Storage.Format {
	case "", "json", "yaml":
	default:
		return fmt.Errorf("storage.format %q: must be json or yaml", c.Storage.Format)
	}
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultConfig().Storage.Path
	}
	return nil
}

// FrameInterval returns the render tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Display.FrameIntervalMs) * time.Millisecond
}

// StoragePath returns the collection file, with the extension forced by Format
func (c *Config) StoragePath() string {
	p := c.Storage.Path
	switch c.Storage.Format {
	case "json":
		return strings.TrimSuffix(p, filepath.Ext(p)) + ".json"
	case "yaml":
		ext := strings.ToLower(filepath.Ext(p))
		if ext == ".yaml" || ext == ".yml" {
			return p
		}
		return strings.TrimSuffix(p, filepath.Ext(p)) + ".yaml"
	}
	return p
}

// AudioSettings converts to the audio package configuration
func (c *Config) AudioSettings() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		Volume:       c.Audio.Volume,
		SampleRate:   c.Audio.SampleRate,
		ReplayQueued: c.Audio.ReplayQueued,
		QueueSize:    c.Audio.QueueSize,
	}
}
