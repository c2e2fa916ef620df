package main

import (
	"fmt"
	"os"
	"strconv"

	"finman/internal/cli"
	"finman/internal/model"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add AMOUNT DATE CATEGORY DESCRIPTION TYPE",
		Short: "Add a new transaction",
		Long: `Add records a single income or expense transaction.

The date must be in YYYY-MM-DD form and the type either 'income' or
'expense'. An expense is rejected when it would push total expenses
past total income.`,
		Args: cobra.ExactArgs(5),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		// Let the ledger produce the field-level validation error.
		amount = 0
	}
	date, category, description := args[1], args[2], args[3]
	typ := model.TransactionType(args[4])

	l, cleanup, err := getLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := l.AddTransaction(ctx, amount, date, category, description, typ)
	if err != nil {
		fmt.Fprintln(os.Stdout, cli.ErrorStyle.Render(friendlyError(err)))
		return err
	}

	fmt.Fprintln(os.Stdout, cli.SuccessStyle.Render(
		fmt.Sprintf("Transaction %d added: %s %s on %s for %s", id, args[0], typ, date, category)))
	return nil
}
