package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"finman/internal/cli"
	"finman/internal/seed"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	seedCount int
	seedValue int64
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the ledger with random transactions",
		Long: `Seed generates random income and expense transactions for demos and
testing. Expenses are capped at 80% of the generated income on top of
the ledger's own balance guard; attempts over either limit are skipped.

The schema must already exist; run 'finman migrate' first.`,
		RunE: runSeed,
	}

	cmd.Flags().IntVar(&seedCount, "count", 100, "Number of transactions to attempt (n/4 income, n/4 expenses)")
	cmd.Flags().Int64Var(&seedValue, "seed", 0, "Random seed (0 uses the current time)")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	l, cleanup, err := getLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	attempts := seedCount / 4 * 2
	bar := progressbar.NewOptions(attempts,
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Seeding transactions..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stdout)
		}),
	)

	gen := seed.NewGenerator(l, rng)
	gen.Progress = func() { _ = bar.Add(1) }

	res, err := gen.Generate(ctx, seedCount)
	if err != nil {
		fmt.Fprintln(os.Stdout, cli.ErrorStyle.Render(friendlyError(err)))
		return err
	}

	fmt.Fprintln(os.Stdout, cli.SuccessStyle.Render(fmt.Sprintf(
		"Seeded %d income and %d expense transactions (%d skipped, income total %.2f)",
		res.IncomeAdded, res.ExpensesAdded, res.Skipped, res.TotalIncome)))
	return nil
}
