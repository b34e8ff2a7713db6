// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoLevels is returned for a pack without any level entries.
	ErrNoLevels = errors.New("pack has no levels")
	// ErrMissingID is returned for a pack entry without an id.
	ErrMissingID = errors.New("level has no id")
)

// YAMLPack represents the YAML structure of a level pack file.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level entry in a pack.
type YAMLLevel struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Plan string `yaml:"plan"`
}

// Pack is a parsed, ordered list of level plans.
type Pack struct {
	Name   string
	Levels []Level
}

// Level is one raw plan as read from a file. The plan is not validated here.
type Level struct {
	ID   string
	Name string
	Plan string
}

// ParseYAML parses a YAML level pack.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Levels) == 0 {
		return Pack{}, ErrNoLevels
	}

	pack := Pack{Name: yp.Name, Levels: make([]Level, 0, len(yp.Levels))}
	for i, yl := range yp.Levels {
		if yl.ID == "" {
			return Pack{}, fmt.Errorf("entry %d: %w", i+1, ErrMissingID)
		}
		name := yl.Name
		if name == "" {
			name = yl.ID
		}
		pack.Levels = append(pack.Levels, Level{ID: yl.ID, Name: name, Plan: yl.Plan})
	}

	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
