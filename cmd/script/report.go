package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"portfoliotracker/cmd"
	"portfoliotracker/internal/domain"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var strategyName string

	c := &cobra.Command{
		Use:   "report",
		Short: "Print a strategy's asset summaries, or the overview of every strategy",
		RunE: func(c *cobra.Command, args []string) error {
			_, handler, err := loadHandler()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			ctx := c.Context()
			out := c.OutOrStdout()

			if strategyName == "" {
				overview, err := handler.StrategyService.GetOverview(ctx)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "STRATEGY\tVALUE\tNET P&L\tASSETS\tHELD\tDEGRADED")
				for _, o := range overview {
					value := "-"
					if o.Latest != nil {
						value = o.Latest.TotalValue.StringFixed(2)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%t\n",
						o.Strategy,
						value,
						o.Summary.TotalNetPnL.StringFixed(2),
						o.Summary.TotalAssets,
						o.Summary.CurrentlyHeld,
						o.Summary.Degraded,
					)
				}
				return w.Flush()
			}

			strategy, err := domain.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			report, err := handler.StrategyService.GetAssetSummaries(ctx, strategy)
			if err != nil {
				return err
			}
			return printAssetReport(out, report)
		},
	}
	c.Flags().StringVar(&strategyName, "strategy", "", "intraday, weekly or hold")
	return c
}

func printAssetReport(out io.Writer, report *domain.AssetReport) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tBUYS\tSELLS\tREALIZED\tUNREALIZED\tNET\tDAYS\tHELD")
	for _, a := range report.Assets {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%d\t%s\n",
			a.Symbol,
			a.BuyCount,
			a.SellCount,
			a.RealizedPnL.StringFixed(2),
			a.UnrealizedPnL.StringFixed(2),
			a.NetPnL.StringFixed(2),
			a.TradingDays,
			a.CurrentPosition.String(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := report.Summary
	fmt.Fprintf(out, "\ntotal net P&L %s, current value %s, initial %s\n",
		s.TotalNetPnL.StringFixed(2),
		s.CurrentPortfolioValue.StringFixed(2),
		s.InitialInvestment.StringFixed(2),
	)
	if s.Degraded {
		fmt.Fprintf(out, "ledger degraded: %d violations, %d invalid legs\n", len(s.Violations), len(s.InvalidLegs))
		for _, v := range s.Violations {
			fmt.Fprintln(out, "  "+v.Error())
		}
		for _, l := range s.InvalidLegs {
			fmt.Fprintln(out, "  "+l.Error())
		}
	}
	return nil
}
