package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timberio/vectorsite"
	"github.com/timberio/vectorsite/site"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "vectorsite",
	Short:         "Serve and export the Vector community and blog pages",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "site config file (default is ./site.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// newApp builds an App from the environment and the site config file.
func newApp() (*vectorsite.App, error) {
	cfg, err := vectorsite.ParseEnv()
	if err != nil {
		return nil, err
	}
	path := cfgFile
	if path == "" {
		path = cfg.SiteConfig
	}
	siteCfg, err := site.Load(path)
	if err != nil {
		return nil, err
	}
	return vectorsite.New(cfg, siteCfg), nil
}
