package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rcliao/style-kb/internal/web"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web interface and JSON API",
		Run:   runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default 127.0.0.1:8080)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStore(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	srv, err := web.New(s, web.Options{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	})
	if err != nil {
		exitErr("serve", err)
	}

	logger.Info().Str("storage", cfg.Storage.Type).Msg("opened store")
	if err := srv.Run(ctx, cfg.Server.Addr); err != nil {
		exitErr("serve", err)
	}
}
