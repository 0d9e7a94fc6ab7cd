package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/teatime/engine"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the bubble collection file used when none is configured
const DefaultFileName = "teatime.json"

// Persister reads and writes the whole bubble collection
type Persister interface {
	Load() ([]engine.Bubble, error)
	Save(bubbles []engine.Bubble) error
	Clear() error
	Path() string
}

// NewPersister selects a persister by file extension, JSON unless .yaml/.yml
func NewPersister(path string) (Persister, error) {
	if path == "" {
		path = DefaultFileName
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLPersister(path)
	default:
		return NewJSONPersister(path)
	}
}

// ensureDir creates the parent directory of a file path
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// readFile returns nil data without error when the file does not exist
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeFile replaces path atomically through a temp file in the same directory
func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// JSONPersister stores bubbles as a JSON array of records
type JSONPersister struct {
	path string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists
func NewJSONPersister(path string) (*JSONPersister, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return &JSONPersister{path: path}, nil
}

func (p *JSONPersister) Path() string { return p.path }

func (p *JSONPersister) Load() ([]engine.Bubble, error) {
	data, err := readFile(p.path)
	if err != nil || data == nil {
		return nil, err
	}

	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return toBubbles(recs)
}

func (p *JSONPersister) Save(bubbles []engine.Bubble) error {
	data, err := json.MarshalIndent(toRecords(bubbles), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return writeFile(p.path, data)
}

func (p *JSONPersister) Clear() error {
	return removeFile(p.path)
}

// YAMLPersister stores bubbles as a YAML sequence of records
type YAMLPersister struct {
	path string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists
func NewYAMLPersister(path string) (*YAMLPersister, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return &YAMLPersister{path: path}, nil
}

func (p *YAMLPersister) Path() string { return p.path }

func (p *YAMLPersister) Load() ([]engine.Bubble, error) {
	data, err := readFile(p.path)
	if err != nil || data == nil {
		return nil, err
	}

	var recs []record
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return toBubbles(recs)
}

func (p *YAMLPersister) Save(bubbles []engine.Bubble) error {
	data, err := yaml.Marshal(toRecords(bubbles))
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return writeFile(p.path, data)
}

func (p *YAMLPersister) Clear() error {
	return removeFile(p.path)
}
