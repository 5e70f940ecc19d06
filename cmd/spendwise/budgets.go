package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendwise-app/spendwise/internal/budget"
	"github.com/spendwise-app/spendwise/internal/cli"
	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/registry"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage per-category budgets",
		Long:  `Set, reset, and inspect per-category monthly budget amounts.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(resetBudgetCmd())
	cmd.AddCommand(resetAllBudgetsCmd())
	cmd.AddCommand(budgetStatusCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the budget for a category",
		Long:  `Set the budget amount for a category. Setting an existing budget replaces it.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := budget.NewLedger(store).Set(ctx, userID, args[0], amount); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget saved for %s", args[0])))
			return nil
		},
	}
}

func resetBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <category>",
		Short: "Clear the budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := budget.NewLedger(store).Reset(ctx, userID, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Budget reset for %s", args[0])))
			return nil
		},
	}
}

func resetAllBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-all",
		Short: "Clear every budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := budget.NewLedger(store).ResetAll(ctx, userID); err != nil {
				return err
			}

			fmt.Println(cli.WarningStyle.Render("All budgets were reset"))
			return nil
		},
	}
}

func budgetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show spend against budget for every category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			names, err := registry.New(store).Names(ctx, userID)
			if err != nil {
				return err
			}

			statuses, err := budget.NewLedger(store).StatusGrid(ctx, userID, names)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Spent"),
				cli.BoldStyle.Render("Budget"),
				cli.BoldStyle.Render("Status"))

			for _, status := range statuses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					status.Category,
					formatAmount(status.Spent),
					formatBudget(status),
					cli.TierStyle(status.Tier).Render(string(status.Tier)))
			}
			return nil
		},
	}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatBudget(status model.BudgetStatus) string {
	if status.Tier == model.TierUnset {
		return cli.SubtleStyle.Render("No budget set")
	}
	return fmt.Sprintf("%s (%.1f%%)", formatAmount(status.Budget), status.Percent)
}
