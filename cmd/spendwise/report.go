package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendwise-app/spendwise/internal/analytics"
	"github.com/spendwise-app/spendwise/internal/cli"
	"github.com/spendwise-app/spendwise/internal/ledger"
	"github.com/spendwise-app/spendwise/internal/model"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derived analytics over your transactions",
		Long:  `KPIs, per-category breakdown, and the daily series with a 7-day average and month-end forecast.`,
	}

	cmd.AddCommand(kpisCmd())
	cmd.AddCommand(breakdownCmd())
	cmd.AddCommand(forecastCmd())

	return cmd
}

// loadSnapshot fetches the (optionally filtered) transaction snapshot the
// analytics run over.
func loadSnapshot(cmd *cobra.Command, category, from, to string) ([]model.Transaction, error) {
	ctx := cmd.Context()

	userID, _, err := currentUser()
	if err != nil {
		return nil, err
	}

	filter, err := buildFilter(category, from, to)
	if err != nil {
		return nil, err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	return ledger.NewLedger(store).List(ctx, userID, filter)
}

func kpisCmd() *cobra.Command {
	var category, from, to string

	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Total, average per day, and count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, err := loadSnapshot(cmd, category, from, to)
			if err != nil {
				return err
			}

			kpis := analytics.ComputeKPIs(transactions)

			fmt.Println(cli.TitleStyle.Render("Overview"))
			fmt.Printf("Total Spending:  %s\n", cli.BoldStyle.Render(formatAmount(kpis.Total)))
			fmt.Printf("Avg per Day:     %s\n", cli.BoldStyle.Render(formatAmount(kpis.AvgPerDay)))
			fmt.Printf("Transactions:    %s\n", cli.BoldStyle.Render(fmt.Sprintf("%d", kpis.Count)))
			return nil
		},
	}

	txFilterFlags(cmd, &category, &from, &to)
	return cmd
}

func breakdownCmd() *cobra.Command {
	var category, from, to string

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Spending summed by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, err := loadSnapshot(cmd, category, from, to)
			if err != nil {
				return err
			}

			breakdown := analytics.CategoryBreakdown(transactions)
			if len(breakdown) == 0 {
				fmt.Println(cli.InfoStyle.Render("No data to plot."))
				return nil
			}

			names := make([]string, 0, len(breakdown))
			var total float64
			for name, amount := range breakdown {
				names = append(names, name)
				total += amount
			}
			sort.Slice(names, func(i, j int) bool {
				return breakdown[names[i]] > breakdown[names[j]]
			})

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Share"))
			for _, name := range names {
				fmt.Fprintf(w, "%s\t%s\t%.1f%%\n",
					name, formatAmount(breakdown[name]), breakdown[name]/total*100)
			}
			return nil
		},
	}

	txFilterFlags(cmd, &category, &from, &to)
	return cmd
}

func forecastCmd() *cobra.Command {
	var category, from, to string

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Daily series with 7-day average and month-end forecast",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, err := loadSnapshot(cmd, category, from, to)
			if err != nil {
				return err
			}

			series := analytics.DailySeriesWithForecast(transactions)
			if len(series.Daily) == 0 {
				fmt.Println(cli.InfoStyle.Render("Not enough data to build forecast yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Daily"),
				cli.BoldStyle.Render("7-day MA"))
			for _, point := range series.Daily {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					point.Date, formatAmount(point.Total), formatAmount(point.MovingAvg))
			}

			for _, point := range series.Forecast {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					point.Date,
					cli.SubtleStyle.Render("forecast"),
					formatAmount(point.Value))
			}
			return nil
		},
	}

	txFilterFlags(cmd, &category, &from, &to)
	return cmd
}
