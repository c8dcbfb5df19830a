package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

func TestBuildTotalCount(t *testing.T) {
	tasks, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tasks) != 144 {
		t.Errorf("len(tasks) = %d, want 144", len(tasks))
	}
}

func TestBuildCountsByType(t *testing.T) {
	tasks, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	counts := CountByType(tasks)

	want := map[domain.BlockType]int{
		domain.BlockExecutiveSummary:      12, // 3 risk tolerances × 4 variations
		domain.BlockIndustryNarrative:     21, // 7 industries × 3 variations
		domain.BlockSolutionDescription:   9,
		domain.BlockCategoryAnchor:        14, // 7 categories × 2 variations
		domain.BlockImpactPrimary:         8,
		domain.BlockImpactSecondary:       17,
		domain.BlockImpactTertiary:        30,
		domain.BlockSynergy:               10,
		domain.BlockMethodology:           3,
		domain.BlockImplementationRoadmap: 3,
		domain.BlockWhyNow:                1,
		domain.BlockDIYVsPartner:          1,
		domain.BlockReadinessAssessment:   1,
		domain.BlockReportLimitations:     1,
		domain.BlockRiskFactors:           1,
		domain.BlockNextSteps:             1,
		domain.BlockPartnerAcknowledgment: 1,
		domain.BlockSalesEnablement:       10,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("CountByType = %v, want %v", counts, want)
	}
}

func TestBuildKeysUnique(t *testing.T) {
	tasks, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	seen := make(map[string]domain.BlockType, len(tasks))
	for _, task := range tasks {
		if prev, dup := seen[task.OutputKey]; dup {
			t.Errorf("duplicate key %q (%s and %s)", task.OutputKey, prev, task.BlockType)
		}
		seen[task.OutputKey] = task.BlockType
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two builds over the same tables differ")
	}
}

func TestBuildOutputKeys(t *testing.T) {
	tasks, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	keys := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		keys[task.OutputKey] = true
	}

	want := []string{
		"executive_summary_conservative_v1",
		"executive_summary_aggressive_v4",
		"industry_food_&_beverage_v1",
		"industry_retail_e-commerce_v3",
		"solution_inventory_planning_and_replenishment",
		"solution_demand_forecasting_ai",
		"category_returns_obsolescence_shrinkage_v2",
		"impact_demand_forecasting_ai_returns_obsolescence_shrinkage",
		"impact_sku_rationalization_analytics_it_costs_(supply_chain)",
		"synergy_demand_forecast_inventory_plann",
		"methodology_moderate",
		"roadmap_low",
		"why_now",
		"partner_acknowledgment",
		"sales_enablement_demand_forecasting_ai___invent",
	}
	for _, k := range want {
		if !keys[k] {
			t.Errorf("missing expected key %q", k)
		}
	}
}

func TestBuildSkipsMinimalCells(t *testing.T) {
	tasks, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// IT Costs cells are MINIMAL for every solution except SKU
	// Rationalization, so only that one explanation exists.
	var itKeys []string
	for _, task := range tasks {
		if strings.HasPrefix(task.OutputKey, "impact_") && strings.Contains(task.OutputKey, "it_costs") {
			itKeys = append(itKeys, task.OutputKey)
		}
	}
	want := []string{"impact_sku_rationalization_analytics_it_costs_(supply_chain)"}
	if !reflect.DeepEqual(itKeys, want) {
		t.Errorf("IT cost impact keys = %v, want %v", itKeys, want)
	}
}

func TestBuildBucketTagsMatchKeyRouting(t *testing.T) {
	tasks, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, task := range tasks {
		if got := domain.BucketForKey(task.OutputKey); got != task.Bucket {
			t.Errorf("key %q tagged %s but routes to %s", task.OutputKey, task.Bucket, got)
		}
	}
}

func TestBuildImpactParams(t *testing.T) {
	tasks, err := Build(DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, task := range tasks {
		if task.OutputKey != "impact_obsolescence_&_aging_control_returns_obsolescence_shrinkage" {
			continue
		}
		if task.BlockType != domain.BlockImpactPrimary {
			t.Errorf("block type = %s, want %s", task.BlockType, domain.BlockImpactPrimary)
		}
		wantParams := map[string]string{
			"conservative_range": "-20% to -30%",
			"moderate_range":     "-30% to -50%",
			"aggressive_range":   "-50% to -70%",
			"typical_range":      "-30% to -50%",
		}
		for name, want := range wantParams {
			if got := task.Params[name]; got != want {
				t.Errorf("params[%q] = %q, want %q", name, got, want)
			}
		}
		return
	}
	t.Fatal("obsolescence/returns impact task not found")
}

func TestBuildDuplicateKey(t *testing.T) {
	tables := DefaultTables()
	tables.RiskTolerances = []RiskTolerance{
		{Name: "Moderate", Discount: 80, Cap: 40},
		{Name: "Moderate", Discount: 80, Cap: 40},
	}
	_, err := Build(tables)
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Errorf("Build with colliding tables: err = %v, want ErrDuplicateKey", err)
	}
}

func TestImpactSubTable(t *testing.T) {
	tables := DefaultTables()
	table := impactSubTable(tables, "Demand Forecasting AI")
	if !strings.Contains(table, "- Returns/Obsolescence/Shrinkage: SECONDARY impact, -10% to -15% (moderate)") {
		t.Errorf("sub-table missing expected line:\n%s", table)
	}
	lines := strings.Split(table, "\n")
	if len(lines) != len(tables.Categories) {
		t.Errorf("sub-table has %d lines, want %d", len(lines), len(tables.Categories))
	}
	if impactSubTable(tables, "No Such Solution") != "" {
		t.Error("sub-table for unknown solution should be empty")
	}
}

func TestSlugs(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"pathSlug", pathSlug, "Returns/Obsolescence/Shrinkage", "returns_obsolescence_shrinkage"},
		{"pathSlug", pathSlug, "IT Costs (Supply Chain)", "it_costs_(supply_chain)"},
		{"spaceSlug", spaceSlug, "Inventory Planning & Replenishment", "inventory_planning_&_replenishment"},
		{"solutionSlug", solutionSlug, "Inventory Planning & Replenishment", "inventory_planning_and_replenishment"},
		{"comboSlug", comboSlug, "Supplier Lead Time + Inventory Planning", "supplier_lead_time___inventory_planning"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.in, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("%s(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
			}
		})
	}
}
