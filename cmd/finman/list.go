package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"finman/internal/cli"
	"finman/internal/common"
	"finman/internal/model"
	"finman/internal/service"

	"github.com/spf13/cobra"
)

var (
	listCategory string
	listDate     string
	listType     string
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "View transactions",
		Long: `List shows transactions joined with their category name.

Filters are optional and combine with AND; an unset filter leaves that
field unconstrained.`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listCategory, "category", "", "Filter by category name")
	cmd.Flags().StringVar(&listDate, "date", "", "Filter by date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&listType, "type", "", "Filter by type (income, expense)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var filter service.TransactionFilter
	if cmd.Flags().Changed("category") {
		filter.Category = &listCategory
	}
	if cmd.Flags().Changed("date") {
		day, err := time.Parse(model.DateLayout, listDate)
		if err != nil {
			return common.NewValidationError("date", "must be a valid YYYY-MM-DD date")
		}
		filter.Date = &day
	}
	if cmd.Flags().Changed("type") {
		typ := model.TransactionType(listType)
		if !typ.Valid() {
			return common.NewValidationError("type", "must be either 'income' or 'expense'")
		}
		filter.Type = &typ
	}

	l, cleanup, err := getLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	txns, err := l.Transactions(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(txns) == 0 {
		fmt.Fprintln(os.Stdout, cli.SubtleStyle.Render("No transactions found."))
		return nil
	}

	rows := make([][]string, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, []string{
			strconv.FormatInt(txn.ID, 10),
			fmt.Sprintf("%.2f", txn.Amount),
			txn.DateString(),
			txn.CategoryName,
			txn.Description,
			string(txn.Type),
		})
	}

	fmt.Fprint(os.Stdout, cli.RenderTable(
		[]string{"ID", "Amount", "Date", "Category", "Description", "Type"},
		rows))
	return nil
}
