package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the active pack",
	Long: `Lists the levels play would use, in campaign order.

The pack comes from --levels, then the levels.path config key, then the
built-in pack.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	path, err := levelsPath()
	if err != nil {
		return fail("load config", err)
	}

	lvls, err := levels.Load(path)
	if err != nil {
		return fail("load levels", err)
	}

	source := path
	if source == "" {
		source = levels.DefaultSource
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Levels from %s:\n\n", source)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("#", "ID", "Name", "Size", "Coins")
	for i, info := range lvls {
		lvl, err := info.Parse(0)
		if err != nil {
			return fail("parse level", err)
		}
		coins := 0
		for _, a := range lvl.StartActors() {
			if a.Kind() == sim.KindCoin {
				coins++
			}
		}
		t.Row(
			strconv.Itoa(i+1),
			info.ID,
			info.Name,
			fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height()),
			strconv.Itoa(coins),
		)
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

// levelsPath returns the level pack path from the flag or the config.
func levelsPath() (string, error) {
	if flagLevels != "" {
		return flagLevels, nil
	}
	cfg, _, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return "", err
	}
	return cfg.Levels.Path, nil
}
