package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" y \n", true},
		{"n\n", false},
		{"yes\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := confirm(strings.NewReader(tt.input)); got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlanBreakdown(t *testing.T) {
	var buf bytes.Buffer
	planCmd.SetOut(&buf)

	if err := runPlan(planCmd, nil); err != nil {
		t.Fatalf("runPlan: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Total blocks: 144",
		"executive_summary: 12",
		"industry_narrative: 21",
		"impact_tertiary: 30",
		"sales_enablement: 10",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}
}
