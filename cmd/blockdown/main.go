package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sokinpui/blockdown/blockdown"
	"github.com/sokinpui/blockdown/internal/cli"
	"github.com/sokinpui/blockdown/internal/tui"
	"github.com/sokinpui/blockdown/internal/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}

	app, err := blockdown.New(cfg)
	if err != nil {
		ui.Error("Failed to initialize application: %v", err)
		os.Exit(1)
	}

	// Flags that print to stdout and should not run the TUI.
	if cfg.Output {
		md := app.Markdown()
		if md == "" {
			ui.Warning("Document is empty. Nothing to print.")
			return
		}
		fmt.Println(md)
		return
	}

	model := tui.New(app, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ui.Error("Error running program: %v", err)
		os.Exit(1)
	}
}
