package formats

import (
	"path/filepath"
	"strings"
)

// ParseText wraps a plain-text plan file in a single-level pack.
// The level ID and name are the file name without its extension.
func ParseText(path string, data []byte) (Pack, error) {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Pack{
		Name:   id,
		Levels: []Level{{ID: id, Name: id, Plan: string(data)}},
	}, nil
}
