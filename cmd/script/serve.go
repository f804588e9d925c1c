package main

import (
	"portfoliotracker/cmd"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var port int

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the http api",
		RunE: func(c *cobra.Command, args []string) error {
			conf, handler, err := loadHandler()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			if port == 0 {
				port = conf.Port
			}
			zap.S().Infow("starting api", "port", port, "env", conf.Env)
			return handler.StartApi(port)
		},
	}
	c.Flags().IntVar(&port, "port", 0, "port to listen on (defaults to config)")
	return c
}
