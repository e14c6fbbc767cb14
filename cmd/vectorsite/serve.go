package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	watch bool
	addr  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `The serve command loads the content directory into the post index and
serves the community page, the blog, and its feeds. With --watch, edits to the
content directory are picked up without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if addr != "" {
			app.Config.Addr = addr
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := app.Open(); err != nil {
			return err
		}
		if watch {
			go func() {
				if err := app.Watch(ctx); err != nil {
					logrus.WithError(err).Error("content watcher stopped")
				}
			}()
		}
		return app.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload content when files change")
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides VECTORSITE_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
