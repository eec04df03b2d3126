package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Valid initial view modes.
const (
	ModeEdit    = "edit"
	ModePreview = "preview"
	ModeCode    = "code"
)

// Config holds all the command-line flag values.
type Config struct {
	File   string
	Output bool
	Mode   string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringVarP(&cfg.File, "file", "f", "", "Open a Markdown file as the initial document.")
	pflag.BoolVarP(&cfg.Output, "output", "o", false, "Print the document as Markdown to stdout and exit (no TUI).")
	pflag.StringVarP(&cfg.Mode, "mode", "m", ModeEdit, "Initial view mode: edit, preview or code.")

	pflag.Usage = func() {
		fmt.Println("Usage: blockdown [flags]")
		fmt.Println("\nEdit a Markdown document as a list of typed blocks.")
		fmt.Println("\nExample: blockdown -f notes.md")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Validate mode
	switch cfg.Mode {
	case ModeEdit, ModePreview, ModeCode:
	default:
		return nil, fmt.Errorf("error: invalid mode '%s' (want edit, preview or code)", cfg.Mode)
	}

	return cfg, nil
}
