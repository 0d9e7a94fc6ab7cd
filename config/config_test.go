package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/teatime/audio"
	"github.com/lixenwraith/teatime/constants"
)

// TestDefaultConfig verifies built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Storage.Path != "teatime.json" {
		t.Errorf("Expected storage path teatime.json, got %q", cfg.Storage.Path)
	}
	if cfg.Audio.Chime != audio.ResourceBell {
		t.Errorf("Expected bell chime, got %q", cfg.Audio.Chime)
	}
	if cfg.FrameInterval() != constants.FrameUpdateInterval {
		t.Errorf("Expected frame interval %v, got %v", constants.FrameUpdateInterval, cfg.FrameInterval())
	}
	if cfg.Display.CellAspect != constants.DefaultCellAspect {
		t.Errorf("Expected cell aspect %f, got %f", constants.DefaultCellAspect, cfg.Display.CellAspect)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got: %v", err)
	}
}

// TestLoadMissingFile verifies absent files fall back to defaults
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}

	cfg, err = Load("")
	if err != nil || cfg == nil {
		t.Errorf("Expected defaults for empty path, got %v, %v", cfg, err)
	}
}

// TestLoadYAML verifies partial YAML overlays defaults
func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teatime.yaml")
	doc := `
storage:
  path: /tmp/bubbles.yaml
audio:
  volume: 0.25
  replay_queued: false
display:
  frame_interval_ms: 33
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Storage.Path != "/tmp/bubbles.yaml" {
		t.Errorf("Expected storage path override, got %q", cfg.Storage.Path)
	}
	if cfg.Audio.Volume != 0.25 {
		t.Errorf("Expected volume 0.25, got %f", cfg.Audio.Volume)
	}
	if cfg.Audio.ReplayQueued {
		t.Error("Expected replay_queued=false")
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected unspecified audio.enabled to keep default true")
	}
	if cfg.FrameInterval() != 33*time.Millisecond {
		t.Errorf("Expected 33ms frame interval, got %v", cfg.FrameInterval())
	}
}

// TestLoadTOML verifies TOML parsing
func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teatime.toml")
	doc := `
debug = true

[audio]
enabled = false
chime = "sounds/ding.wav"

[display]
cell_aspect = 2.5
color_mode = "256"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !cfg.Debug {
		t.Error("Expected debug=true")
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.Chime != "sounds/ding.wav" {
		t.Errorf("Expected chime override, got %q", cfg.Audio.Chime)
	}
	if cfg.Display.CellAspect != 2.5 {
		t.Errorf("Expected cell aspect 2.5, got %f", cfg.Display.CellAspect)
	}
	if cfg.Display.ColorMode != "256" {
		t.Errorf("Expected color mode 256, got %q", cfg.Display.ColorMode)
	}
}

// TestLoadErrors verifies malformed and unknown files fail
func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("audio: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}

	ini := filepath.Join(dir, "teatime.ini")
	if err := os.WriteFile(ini, []byte("x=1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(ini); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got: %v", err)
	}
}

// TestSaveRoundTrip verifies Save output loads back identically
func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "conf", name)
			want := DefaultConfig()
			want.Audio.Volume = 0.5
			want.Storage.Format = "yaml"

			if err := want.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if *got != *want {
				t.Errorf("Expected %+v, got %+v", want, got)
			}
		})
	}
}

// TestValidate verifies clamping and enum checks
func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio.Volume = 4
	cfg.Display.FrameIntervalMs = 0
	cfg.Display.CellAspect = -1
	cfg.Audio.Chime = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected clamping without error, got: %v", err)
	}
	if cfg.Audio.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.Audio.Volume)
	}
	if cfg.FrameInterval() != constants.MinFrameInterval {
		t.Errorf("Expected frame interval %v, got %v", constants.MinFrameInterval, cfg.FrameInterval())
	}
	if cfg.Display.CellAspect != constants.DefaultCellAspect {
		t.Errorf("Expected default cell aspect, got %f", cfg.Display.CellAspect)
	}
	if cfg.Audio.Chime != audio.ResourceBell {
		t.Errorf("Expected bell chime, got %q", cfg.Audio.Chime)
	}

	cfg.Display.ColorMode = "sepia"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown color mode")
	}

	cfg = DefaultConfig()
	cfg.Storage.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown storage format")
	}
}

// TestStoragePath verifies format forces the extension
func TestStoragePath(t *testing.T) {
	tests := []struct {
		path   string
		format string
		want   string
	}{
		{"teatime.json", "", "teatime.json"},
		{"teatime.json", "yaml", "teatime.yaml"},
		{"data/teatime.yml", "yaml", "data/teatime.yml"},
		{"data/teatime.yaml", "json", "data/teatime.json"},
		{"bubbles", "json", "bubbles.json"},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Storage.Path = tt.path
		cfg.Storage.Format = tt.format
		if got := cfg.StoragePath(); got != tt.want {
			t.Errorf("StoragePath(%q, %q): expected %q, got %q", tt.path, tt.format, tt.want, got)
		}
	}
}

// TestAudioSettings verifies conversion to the audio package
func TestAudioSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio.Volume = 0.3
	cfg.Audio.QueueSize = 4

	a := cfg.AudioSettings()
	if a.Volume != 0.3 || a.QueueSize != 4 || a.SampleRate != cfg.Audio.SampleRate {
		t.Errorf("Expected converted settings, got %+v", a)
	}
}
