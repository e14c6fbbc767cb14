package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var outDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return app.Export(ctx, outDir)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "public", "output directory")
	rootCmd.AddCommand(buildCmd)
}
