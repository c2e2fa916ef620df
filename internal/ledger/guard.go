package ledger

import (
	"fmt"

	"finman/internal/common"
	"finman/internal/service"
)

// checkBalance denies a candidate expense when it would push total
// expenses past total income. Pure function of the totals passed in;
// callers read them inside the same database transaction as the
// insert. With zero income any positive expense is denied.
func checkBalance(totals service.Totals, candidate float64) error {
	if totals.Expense+candidate > totals.Income {
		return fmt.Errorf("%w: income %.2f, expenses %.2f, attempted expense %.2f",
			common.ErrOverBudget, totals.Income, totals.Expense, candidate)
	}
	return nil
}
