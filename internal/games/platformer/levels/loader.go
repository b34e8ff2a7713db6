// Package levels provides level pack loading for the platformer.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

var (
	// ErrNotFound is returned by LoadByID for an unknown level ID.
	ErrNotFound = errors.New("level not found")
	// ErrDuplicateID is returned when two levels in one load share an ID.
	ErrDuplicateID = errors.New("duplicate level id")
)

// Level is a validated level plan together with where it came from.
type Level struct {
	ID       string
	Name     string
	Plan     string
	Pack     string
	FilePath string
	Index    int // position within its pack
}

// Parse builds the simulation level. Plans are validated on load, so this
// only fails for a Level constructed by hand.
func (l Level) Parse(seed int64) (*sim.Level, error) {
	return sim.ParseLevel(l.Plan, sim.WithSeed(seed))
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
//
// Broken files do not stop the scan: the levels that loaded are returned
// together with a joined error naming every file that failed. Levels are
// ordered by file path, then by their position in the pack.
func (l *Loader) LoadAll() ([]Level, error) {
	var (
		levels []Level
		errs   []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		loaded, err := l.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}

		levels = append(levels, loaded...)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].FilePath != levels[j].FilePath {
			return levels[i].FilePath < levels[j].FilePath
		}
		return levels[i].Index < levels[j].Index
	})

	if err := checkUnique(levels); err != nil {
		errs = append(errs, err)
	}
	if len(levels) == 0 && len(errs) == 0 {
		errs = append(errs, fmt.Errorf("%s: %w", l.Root, formats.ErrNoLevels))
	}

	return levels, errors.Join(errs...)
}

// LoadFile loads every level of a single pack file.
func (l *Loader) LoadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	pack, err := parseByExtension(path, data, ext)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return fromPack(pack, path)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	return FindByID(levels, id)
}

// ListIDs returns all level IDs in load order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Load resolves a levels path: empty means the built-in pack, a directory
// is scanned with a Loader, anything else is read as a single pack file.
func Load(path string) ([]Level, error) {
	if path == "" {
		return Default()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels path: %w", err)
	}

	loader := NewLoader(path)
	if info.IsDir() {
		return loader.LoadAll()
	}
	return loader.LoadFile(path)
}

// fromPack validates every plan of a pack and tags it with its source.
func fromPack(pack formats.Pack, source string) ([]Level, error) {
	levels := make([]Level, 0, len(pack.Levels))
	for i, pl := range pack.Levels {
		if _, err := sim.ParseLevel(pl.Plan); err != nil {
			return nil, fmt.Errorf("%s: level %q: %w", source, pl.ID, err)
		}
		levels = append(levels, Level{
			ID:       pl.ID,
			Name:     pl.Name,
			Plan:     pl.Plan,
			Pack:     pack.Name,
			FilePath: source,
			Index:    i,
		})
	}

	if err := checkUnique(levels); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return levels, nil
}

func checkUnique(levels []Level) error {
	seen := make(map[string]string, len(levels))
	for _, lvl := range levels {
		if prev, ok := seen[lvl.ID]; ok {
			return fmt.Errorf("%w %q in %s and %s", ErrDuplicateID, lvl.ID, prev, lvl.FilePath)
		}
		seen[lvl.ID] = lvl.FilePath
	}
	return nil
}

// FindByID returns the level with the given ID from a loaded list.
func FindByID(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(path string, data []byte, ext string) (formats.Pack, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt":
		return formats.ParseText(path, data)
	default:
		return formats.Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
