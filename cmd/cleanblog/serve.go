package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/cleanblog"
	"github.com/eringen/cleanblog/views"
)

const (
	envFileFlag = "env-file"
	addrFlag    = "addr"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the blog HTTP server",
		Long: `Start the blog HTTP server.

Configuration is read from the dotenv file given by --env-file (ignored when
missing) and from the environment:

  SECRET_KEY     required, signs session and CSRF cookies
  SQLITE__PATH   database file or sqlite:/// URI (default data/posts.db)
  ADDR           listen address (default :5003)
  SITE_NAME      site title (default Blog)
  SITE_AUTHOR    footer credit
  COOKIE_SECURE  set to true behind HTTPS
  LOG_LEVEL      debug, info, warn, error or off (default info)`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String(envFileFlag, ".env", "dotenv file to load before the environment")
	cmd.Flags().String(addrFlag, "", "listen address, overrides ADDR")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	envFile, err := cmd.Flags().GetString(envFileFlag)
	if err != nil {
		return err
	}
	cfg, err := cleanblog.LoadConfig(envFile)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString(addrFlag); addr != "" {
		cfg.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cleanblog.New(cfg, views.New(cfg))
	return app.Run(ctx)
}
