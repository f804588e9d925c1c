package main

import (
	"os"

	"portfoliotracker/api"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

func loadHandler() (*config.Config, *api.ApiHandler, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	handler, err := cmd.InitializeDependencies(conf)
	if err != nil {
		return nil, nil, err
	}
	return conf, handler, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Rebuilds strategy ledgers from the transaction log and values them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("TRACKER_CONFIG"), "path to a config file")

	root.AddCommand(
		newServeCmd(),
		newReportCmd(),
		newImportLegsCmd(),
		newImportPricesCmd(),
		newIngestPricesCmd(),
	)
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		zap.S().Errorw("command failed", "error", err.Error())
		os.Exit(1)
	}
}
