package main

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rjordan/vscolors/internal/config"
	"github.com/rjordan/vscolors/internal/log"
	"github.com/rjordan/vscolors/internal/report"
	"github.com/rjordan/vscolors/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <theme.json>",
	Short: "Interactively browse a theme's colors and scopes",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	log.SetVerbose(flagVerbose)

	cfg := config.Load()
	opts := resolveOptions(cfg)
	opts.Silent = true // narration would fight the alternate screen

	maps, err := loadMaps(args[0], nil, opts)
	if err != nil {
		return err
	}

	model := tui.NewModel(filepath.Base(args[0]), maps, report.New(cfg.SwatchWidth))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
