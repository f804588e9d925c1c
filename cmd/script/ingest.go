package main

import (
	"fmt"
	"sort"

	"portfoliotracker/cmd"
	"portfoliotracker/internal/util"

	"github.com/spf13/cobra"
)

func newIngestPricesCmd() *cobra.Command {
	var (
		symbols []string
		start   string
	)

	c := &cobra.Command{
		Use:   "ingest-prices",
		Short: "Fetch daily bars from the chart api and store them",
		RunE: func(c *cobra.Command, args []string) error {
			startDate, err := util.ParseDate(start)
			if err != nil {
				return err
			}

			_, handler, err := loadHandler()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			result, err := handler.IngestService.IngestPrices(c.Context(), symbols, startDate)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "stored %d bars for %d symbols\n", result.Bars, len(result.Symbols))
			failed := make([]string, 0, len(result.Failed))
			for symbol := range result.Failed {
				failed = append(failed, symbol)
			}
			sort.Strings(failed)
			for _, symbol := range failed {
				fmt.Fprintf(out, "  %s: %s\n", symbol, result.Failed[symbol].Error())
			}
			return nil
		},
	}
	c.Flags().StringSliceVar(&symbols, "symbols", nil, "comma separated symbols")
	c.Flags().StringVar(&start, "start", "2018-01-01", "first date to fetch, YYYY-MM-DD")
	_ = c.MarkFlagRequired("symbols")
	return c
}
