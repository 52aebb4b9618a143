package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mthorsen/folio/internal/auth"
	"github.com/mthorsen/folio/internal/content"
	"github.com/mthorsen/folio/internal/editor"
	"github.com/mthorsen/folio/internal/notify"
	"github.com/mthorsen/folio/internal/ratelimit"
	"github.com/mthorsen/folio/internal/store"
	"github.com/mthorsen/folio/internal/web"
)

// newServeCmd creates the serve subcommand: the public site and admin API.
func newServeCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(stderr, "folio: %v\n", err)
				return errExit
			}

			logger := newLogger(stderr)

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

			var notifier notify.Notifier = notify.Noop{}
			if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != "" {
				notifier = notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID, logger)
			} else {
				logger.Info("telegram relay disabled, no credentials")
			}

			limiter := ratelimit.New(
				cfg.RateLimit.Max,
				time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			)
			gate := auth.NewGate(cfg.Admin.Username, cfg.Admin.Password, logger)

			srv := web.NewServer(
				st,
				editor.NewService(st, logger),
				gate,
				limiter,
				notifier,
				siteContent,
				logger,
			)

			if cfg.Server.WatchContent && cfg.Server.ContentPath != "" {
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				go func() {
					err := content.Watch(ctx, cfg.Server.ContentPath, logger, srv.SetContent)
					if err != nil {
						logger.Warn("content watcher stopped", "error", err)
					}
				}()
			}

			if err := srv.Run(cfg.Server.Addr); err != nil {
				fmt.Fprintf(stderr, "folio: server: %v\n", err)
				return errExit
			}
			return nil
		},
	}
}
