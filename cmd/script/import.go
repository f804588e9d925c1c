package main

import (
	"fmt"
	"os"

	"portfoliotracker/cmd"
	"portfoliotracker/internal/data"
	"portfoliotracker/internal/domain"

	"github.com/spf13/cobra"
)

func newImportLegsCmd() *cobra.Command {
	var (
		file         string
		strategyName string
	)

	c := &cobra.Command{
		Use:   "import-legs",
		Short: "Append a csv of transaction legs to a strategy's log",
		RunE: func(c *cobra.Command, args []string) error {
			strategy, err := domain.ParseStrategy(strategyName)
			if err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			legs, err := data.LoadLegsCSV(f, strategy)
			if err != nil {
				return err
			}

			_, handler, err := loadHandler()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			n, err := handler.IngestService.ImportLegs(c.Context(), strategy, legs)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "imported %d %s legs\n", n, strategy)
			return nil
		},
	}
	c.Flags().StringVar(&file, "file", "", "csv file to import")
	c.Flags().StringVar(&strategyName, "strategy", "", "intraday, weekly or hold")
	_ = c.MarkFlagRequired("file")
	_ = c.MarkFlagRequired("strategy")
	return c
}

func newImportPricesCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "import-prices",
		Short: "Upsert a csv of daily open/close bars",
		RunE: func(c *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			bars, err := data.LoadPriceBarsCSV(f)
			if err != nil {
				return err
			}

			_, handler, err := loadHandler()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			if err := handler.IngestService.ImportPriceBars(c.Context(), bars); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "imported %d price bars\n", len(bars))
			return nil
		},
	}
	c.Flags().StringVar(&file, "file", "", "csv file to import")
	_ = c.MarkFlagRequired("file")
	return c
}
