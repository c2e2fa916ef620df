package main

import (
	"fmt"
	"os"

	"finman/internal/cli"
	"finman/internal/service"

	"github.com/spf13/cobra"
)

var resetForce bool

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all transactions and categories",
		Long: `Reset removes every transaction and every category from the ledger.

This is a destructive operation; the schema itself is kept.`,
		RunE: runReset,
	}

	cmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	l, cleanup, err := getLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	txns, err := l.Transactions(ctx, service.TransactionFilter{})
	if err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}

	if len(txns) == 0 {
		fmt.Fprintln(os.Stdout, "No transactions found. Nothing to reset.")
		return nil
	}

	// Confirm with user unless --force is used
	if !resetForce {
		fmt.Fprintf(os.Stdout, "This will delete %d transactions and all categories.\n", len(txns))
		fmt.Fprintf(os.Stdout, "\nAre you sure you want to continue? [y/N]: ")

		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if response != "y" && response != "Y" {
			fmt.Fprintln(os.Stdout, "Reset canceled.")
			return nil
		}
	}

	if err := l.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}

	fmt.Fprintln(os.Stdout, cli.SuccessStyle.Render(
		fmt.Sprintf("Deleted %d transactions and all categories.", len(txns))))
	return nil
}
