package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|dir>...",
	Short: "Validate level files",
	Long: `Parses every level in the given pack files or directories and reports
problems with their position. Exits non-zero if any level is invalid.

Examples:
  platformer check ./levels
  platformer check pack.yaml extra/05-spikes.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var errs []error

	for _, path := range args {
		lvls, err := levels.Load(path)
		for _, lvl := range lvls {
			fmt.Fprintf(out, "ok    %s (%s)\n", lvl.ID, lvl.FilePath)
		}
		if err != nil {
			fmt.Fprintf(out, "FAIL  %s\n", path)
			logger.Error("invalid levels", "path", path, "err", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
