package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kayan-consulting/kayan/internal/app"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/logging"
	"github.com/kayan-consulting/kayan/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
		content, err := app.LoadContent()
		if err != nil {
			return err
		}
		lang, err := i18n.Parse(cfg.Language)
		if err != nil {
			return fmt.Errorf("invalid default language: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := web.New(web.Options{
			Addr:            cfg.Server.Addr,
			SessionTTL:      cfg.Server.SessionTTL,
			SweepInterval:   cfg.Server.SweepInterval,
			DefaultLanguage: lang,
			Phone:           cfg.Brand.Phone,
			Texts:           content.Texts,
			Services:        content.Services,
			Replier:         app.NewReplier(ctx, cfg, content, log),
			Logger:          log,
		})
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}
