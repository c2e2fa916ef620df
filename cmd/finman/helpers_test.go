package main

import (
	"errors"
	"fmt"
	"testing"

	"finman/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{
			name: "validation error names the field",
			err:  common.NewValidationError("date", "must be a valid YYYY-MM-DD date"),
			want: "Validation Error: invalid date: must be a valid YYYY-MM-DD date",
		},
		{
			name: "over budget gets guidance",
			err:  fmt.Errorf("%w: income 100.00, expenses 90.00, attempted expense 20.00", common.ErrOverBudget),
			want: "Error: Adding this expense would exceed your total income. Please adjust the amount or add more income first.",
		},
		{
			name: "other errors pass through",
			err:  errors.New("disk on fire"),
			want: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, friendlyError(tt.err))
		})
	}
}
