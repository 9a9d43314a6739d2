// Package cli implements the style-kb CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rcliao/style-kb/internal/config"
	"github.com/rcliao/style-kb/internal/kv"
	"github.com/rcliao/style-kb/internal/logging"
	"github.com/rcliao/style-kb/internal/store"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = zerolog.Nop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "style-kb",
	Short: "A knowledge base of architecture and interior design styles",
	Long: "Keep a collection of design styles: list, edit, import from Excel and export.\n" +
		"The collection is stored as one JSON document in SQLite by default; PostgreSQL,\n" +
		"Redis, S3 and an in-memory store are also available.",
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default: ~/.style-kb/config.toml if present)")
	pf.String("storage", "", "Storage backend: memory, sqlite, postgres, redis, s3 (default sqlite)")
	pf.StringP("db", "d", "", "SQLite database path (default: $STYLE_KB_STORAGE_PATH or ~/.style-kb/style-kb.db)")
	pf.String("url", "", "PostgreSQL or Redis connection URL")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: text or json")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	logger = logging.New(c.Log.Level, c.Log.Format)
	return nil
}

func openStore(ctx context.Context) (*store.Store, error) {
	backend, err := kv.Open(ctx, cfg.KV())
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Storage.Type, err)
	}
	return store.New(backend,
		store.WithKey(cfg.Storage.Key),
		store.WithLogger(logger),
	), nil
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
