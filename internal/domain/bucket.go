package domain

import "strings"

// Bucket names a partition of the output document. Every task is tagged
// with its bucket at catalog construction time; the key-prefix fallback
// below exists only to keep the partition total for keys the catalog
// never produced.
type Bucket string

const (
	BucketExecutiveSummaries   Bucket = "executive_summaries"
	BucketIndustryNarratives   Bucket = "industry_narratives"
	BucketSolutionDescriptions Bucket = "solution_descriptions"
	BucketCategoryAnchors      Bucket = "category_anchors"
	BucketImpactExplanations   Bucket = "impact_explanations"
	BucketSynergies            Bucket = "synergies"
	BucketMethodology          Bucket = "methodology"
	BucketRoadmaps             Bucket = "roadmaps"
	BucketStrategicBlocks      Bucket = "strategic_blocks"
	BucketSalesEnablement      Bucket = "sales_enablement"
)

// Buckets lists every bucket in document order.
func Buckets() []Bucket {
	return []Bucket{
		BucketExecutiveSummaries,
		BucketIndustryNarratives,
		BucketSolutionDescriptions,
		BucketCategoryAnchors,
		BucketImpactExplanations,
		BucketSynergies,
		BucketMethodology,
		BucketRoadmaps,
		BucketStrategicBlocks,
		BucketSalesEnablement,
	}
}

// bucketPrefixes is checked in order; first match wins. sales_enablement_
// must come before the strategic fallback, and the fallback catches
// everything else (why_now, next_steps, ...).
var bucketPrefixes = []struct {
	prefix string
	bucket Bucket
}{
	{"executive_summary_", BucketExecutiveSummaries},
	{"industry_", BucketIndustryNarratives},
	{"solution_", BucketSolutionDescriptions},
	{"category_", BucketCategoryAnchors},
	{"impact_", BucketImpactExplanations},
	{"synergy_", BucketSynergies},
	{"methodology_", BucketMethodology},
	{"roadmap_", BucketRoadmaps},
	{"sales_enablement_", BucketSalesEnablement},
}

// BucketForKey maps an output key to its bucket by prefix. Keys matching
// no known prefix land in strategic_blocks so the partition stays total.
func BucketForKey(key string) Bucket {
	for _, bp := range bucketPrefixes {
		if strings.HasPrefix(key, bp.prefix) {
			return bp.bucket
		}
	}
	return BucketStrategicBlocks
}
