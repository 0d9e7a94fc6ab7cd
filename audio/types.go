package audio

import (
	"errors"
	"path/filepath"
	"strings"
)

// Built-in resource names resolved to the synthesized bell
const (
	ResourceBell = "bell"
)

// Sentinel errors
var (
	ErrUnsupportedResource = errors.New("unsupported audio resource")
	ErrNoOutput            = errors.New("audio output unavailable")
)

// resourceKind classifies a chime resource
type resourceKind int

const (
	kindBell resourceKind = iota
	kindWav
	kindMP3
	kindUnknown
)

// classify maps a resource name to its decoder
func classify(resource string) resourceKind {
	if resource == "" || resource == ResourceBell {
		return kindBell
	}
	switch strings.ToLower(filepath.Ext(resource)) {
	case ".wav":
		return kindWav
	case ".mp3":
		return kindMP3
	}
	return kindUnknown
}
