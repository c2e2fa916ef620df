package main

import (
	"fmt"
	"os"
	"sort"

	"finman/internal/cli"
	"finman/internal/model"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate a financial report",
		Long: `Report prints the ledger summary (total income, total expenses, net
savings) together with by-type and by-category breakdowns.`,
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	l, cleanup, err := getLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := l.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute summary: %w", err)
	}

	fmt.Fprintln(os.Stdout, cli.TitleStyle.Render("Financial Summary"))
	fmt.Fprintf(os.Stdout, "Total Income:   %s\n", cli.BoldStyle.Render(fmt.Sprintf("%.2f", summary.TotalIncome)))
	fmt.Fprintf(os.Stdout, "Total Expenses: %s\n", cli.BoldStyle.Render(fmt.Sprintf("%.2f", summary.TotalExpense)))
	fmt.Fprintf(os.Stdout, "Net Savings:    %s\n\n", cli.BoldStyle.Render(fmt.Sprintf("%.2f", summary.NetSavings)))

	byCategory, err := l.ByCategory(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	if len(byCategory) == 0 {
		fmt.Fprintln(os.Stdout, cli.SubtleStyle.Render("No transactions recorded yet."))
		return nil
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		totals := byCategory[name]
		rows = append(rows, []string{
			name,
			formatAmount(totals.Income),
			formatAmount(totals.Expense),
		})
	}

	fmt.Fprintln(os.Stdout, cli.TitleStyle.Render("By Category"))
	fmt.Fprint(os.Stdout, cli.RenderTable([]string{"Category", "Income", "Expense"}, rows))

	byType, err := l.ByType(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute type breakdown: %w", err)
	}

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, cli.TitleStyle.Render("By Type"))
	fmt.Fprint(os.Stdout, cli.RenderTable([]string{"Type", "Total"}, [][]string{
		{string(model.TypeIncome), formatAmount(byType[model.TypeIncome])},
		{string(model.TypeExpense), formatAmount(byType[model.TypeExpense])},
	}))

	return nil
}

func formatAmount(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
