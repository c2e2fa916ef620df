package ledger

import (
	"testing"

	"finman/internal/common"
	"finman/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCheckBalance(t *testing.T) {
	tests := []struct {
		name      string
		totals    service.Totals
		candidate float64
		wantDeny  bool
	}{
		{
			name:      "zero income denies any expense",
			totals:    service.Totals{},
			candidate: 0.01,
			wantDeny:  true,
		},
		{
			name:      "within income allows",
			totals:    service.Totals{Income: 100, Expense: 50},
			candidate: 40,
			wantDeny:  false,
		},
		{
			name:      "exactly at income allows",
			totals:    service.Totals{Income: 100, Expense: 90},
			candidate: 10,
			wantDeny:  false,
		},
		{
			name:      "one past income denies",
			totals:    service.Totals{Income: 100, Expense: 90},
			candidate: 10.01,
			wantDeny:  true,
		},
		{
			name:      "spec scenario 90 plus 20 over 100",
			totals:    service.Totals{Income: 100, Expense: 90},
			candidate: 20,
			wantDeny:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkBalance(tt.totals, tt.candidate)
			if tt.wantDeny {
				assert.True(t, common.IsOverBudget(err), "expected denial, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
