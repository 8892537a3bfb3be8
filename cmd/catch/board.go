package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the scoreboard",
	Long: `Browse recorded runs for every variant in a table.

Use Tab or Left/Right to switch variants and Esc or Q to leave.`,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := runtimeConfig()
	_, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	return err
}
