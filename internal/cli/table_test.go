package cli

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Category"},
		[][]string{
			{"1", "Rent"},
			{"2", "Groceries"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Category") {
		t.Errorf("Expected header line, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "Groceries") {
		t.Errorf("Expected row content, got %q", lines[2])
	}
}

func TestRenderTable_Empty(t *testing.T) {
	out := RenderTable([]string{"ID"}, nil)
	if !strings.Contains(out, "ID") {
		t.Errorf("Expected header even with no rows, got %q", out)
	}
}
