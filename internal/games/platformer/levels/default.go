package levels

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

//go:embed packs/default.yaml
var defaultPack []byte

// DefaultSource is the FilePath reported for built-in levels.
const DefaultSource = "builtin:default.yaml"

// Default returns the built-in campaign.
func Default() ([]Level, error) {
	pack, err := formats.ParseYAML(defaultPack)
	if err != nil {
		return nil, fmt.Errorf("builtin pack: %w", err)
	}
	return fromPack(pack, DefaultSource)
}
