package domain

import "testing"

func TestBucketForKey(t *testing.T) {
	tests := []struct {
		key  string
		want Bucket
	}{
		{"executive_summary_moderate_v1", BucketExecutiveSummaries},
		{"industry_cpg_v3", BucketIndustryNarratives},
		{"solution_demand_forecasting_ai", BucketSolutionDescriptions},
		{"category_inventory_carrying_cost_v1", BucketCategoryAnchors},
		{"impact_order_pattern_optimization_warehousing_&_logistics", BucketImpactExplanations},
		{"synergy_demand_forecast_inventory_plann", BucketSynergies},
		{"methodology_aggressive", BucketMethodology},
		{"roadmap_high", BucketRoadmaps},
		{"sales_enablement_full_suite_(all_9)", BucketSalesEnablement},
		{"why_now", BucketStrategicBlocks},
		{"partner_acknowledgment", BucketStrategicBlocks},
		{"something_else_entirely", BucketStrategicBlocks},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := BucketForKey(tt.key); got != tt.want {
				t.Errorf("BucketForKey(%q) = %s, want %s", tt.key, got, tt.want)
			}
		})
	}
}

func TestNewDocumentAllocatesAllBuckets(t *testing.T) {
	doc := NewDocument()
	for _, b := range Buckets() {
		m, ok := doc.BucketMap(b)
		if !ok {
			t.Fatalf("BucketMap(%s) not found", b)
		}
		if m == nil {
			t.Errorf("bucket %s map is nil", b)
		}
	}
	if _, ok := doc.BucketMap(Bucket("nope")); ok {
		t.Error("BucketMap should reject unknown buckets")
	}
}
