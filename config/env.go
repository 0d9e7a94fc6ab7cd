package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TEATIME_"

// LoadEnvFile exports variables from a .env file without overriding the environment
// A missing file is not an error
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from TEATIME_* variables
// Unparseable values are logged and skipped
func (c *Config) ApplyEnv() {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				log.Printf("config: ignoring %s%s=%q: %v", EnvPrefix, name, v, err)
				return
			}
			*dst = b
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				log.Printf("config: ignoring %s%s=%q: %v", EnvPrefix, name, v, err)
				return
			}
			*dst = n
		}
	}
	float := func(name string, dst *float64) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				log.Printf("config: ignoring %s%s=%q: %v", EnvPrefix, name, v, err)
				return
			}
			*dst = f
		}
	}

	str("STORAGE_PATH", &c.Storage.Path)
	str("STORAGE_FORMAT", &c.Storage.Format)

	boolean("AUDIO_ENABLED", &c.Audio.Enabled)
	float("AUDIO_VOLUME", &c.Audio.Volume)
	str("AUDIO_CHIME", &c.Audio.Chime)
	boolean("AUDIO_REPLAY_QUEUED", &c.Audio.ReplayQueued)
	integer("AUDIO_SAMPLE_RATE", &c.Audio.SampleRate)
	integer("AUDIO_QUEUE_SIZE", &c.Audio.QueueSize)

	integer("FRAME_INTERVAL_MS", &c.Display.FrameIntervalMs)
	float("CELL_ASPECT", &c.Display.CellAspect)
	str("COLOR", &c.Display.ColorMode)

	boolean("DEBUG", &c.Debug)
}
