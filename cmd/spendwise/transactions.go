package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendwise-app/spendwise/internal/cli"
	"github.com/spendwise-app/spendwise/internal/export"
	"github.com/spendwise-app/spendwise/internal/ledger"
	"github.com/spendwise-app/spendwise/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, edit, delete, list, and export income/expense transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(deleteTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(exportTxCmd())

	return cmd
}

// txFilterFlags wires the shared listing filter flags.
func txFilterFlags(cmd *cobra.Command, category, from, to *string) {
	cmd.Flags().StringVar(category, "category", "", "exact category match")
	cmd.Flags().StringVar(from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(to, "to", "", "end date (YYYY-MM-DD, inclusive)")
}

func buildFilter(category, from, to string) (model.TransactionFilter, error) {
	filter := model.TransactionFilter{Category: category}

	fromDay, err := parseDateFlag(from)
	if err != nil {
		return filter, err
	}
	toDay, err := parseDateFlag(to)
	if err != nil {
		return filter, err
	}

	filter.From = fromDay
	filter.To = toDay
	return filter, nil
}

func addTxCmd() *cobra.Command {
	var amount float64
	var category, date, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			day := model.Today()
			if date != "" {
				day, err = model.ParseDay(date)
				if err != nil {
					return err
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id, err := ledger.NewLedger(store).Add(ctx, userID, amount, category, day, note)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Saved transaction %d", id)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "transaction amount (> 0)")
	cmd.Flags().StringVar(&category, "category", "", "category name")
	cmd.Flags().StringVar(&date, "date", "", "calendar date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func editTxCmd() *cobra.Command {
	var amount float64
	var category, date, note string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txLedger := ledger.NewLedger(store)

			// Start from the stored row so unset flags keep their values.
			existing, err := txLedger.Get(ctx, id, userID)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("amount") {
				amount = existing.Amount
			}
			if category == "" {
				category = existing.Category
			}
			day := existing.Date
			if date != "" {
				day, err = model.ParseDay(date)
				if err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("note") {
				note = existing.Note
			}

			if err := txLedger.Update(ctx, id, userID, amount, category, day, note); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated transaction %d", id)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&date, "date", "", "new date YYYY-MM-DD")
	cmd.Flags().StringVar(&note, "note", "", "new note")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := ledger.NewLedger(store).Delete(ctx, id, userID); err != nil {
				return err
			}

			fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Deleted transaction %d", id)))
			return nil
		},
	}
}

func listTxCmd() *cobra.Command {
	var category, from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			filter, err := buildFilter(category, from, to)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := ledger.NewLedger(store).List(ctx, userID, filter)
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Note"))

			for _, txn := range transactions {
				note := txn.Note
				if note == "" {
					note = cli.SubtleStyle.Render("-")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					txn.ID, txn.Date, txn.Category, formatAmount(txn.Amount), note)
			}
			return nil
		},
	}

	txFilterFlags(cmd, &category, &from, &to)
	return cmd
}

func exportTxCmd() *cobra.Command {
	var category, from, to, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			userID, _, err := currentUser()
			if err != nil {
				return err
			}

			filter, err := buildFilter(category, from, to)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := ledger.NewLedger(store).List(ctx, userID, filter)
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("failed to create output file: %w", createErr)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			return export.WriteCSV(out, transactions)
		},
	}

	txFilterFlags(cmd, &category, &from, &to)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
