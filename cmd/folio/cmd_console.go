package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mthorsen/folio/internal/content"
	"github.com/mthorsen/folio/internal/editor"
	"github.com/mthorsen/folio/internal/store"
	"github.com/mthorsen/folio/internal/ui/app"
)

// newConsoleCmd creates the console subcommand: the TUI admin desktop.
func newConsoleCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the admin console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(stderr, "folio: %v\n", err)
				return errExit
			}

			// slog output would tear the alternate screen, so the
			// console discards it.
			logger := newLogger(io.Discard)

			st, err := store.OpenSQLite(cfg.Store.Path, logger)
			if err != nil {
				fmt.Fprintf(stderr, "folio: open store: %v\n", err)
				return errExit
			}
			defer st.Close()

			siteContent, err := content.Load(cfg.Server.ContentPath)
			if err != nil {
				fmt.Fprintf(stderr, "folio: load content: %v\n", err)
				return errExit
			}

			model := app.New(st, editor.NewService(st, logger), siteContent, logger)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				fmt.Fprintf(stderr, "folio: console: %v\n", err)
				return errExit
			}
			return nil
		},
	}
}
