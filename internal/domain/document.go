package domain

// Metadata summarizes one generation run.
type Metadata struct {
	GeneratedAt string `json:"generated_at"`
	RunID       string `json:"run_id"`
	TotalBlocks int    `json:"total_blocks"`
	Errors      int    `json:"errors"`
	TotalTokens int    `json:"total_tokens"`
}

// Document is the final aggregated artifact: run metadata plus one map
// per bucket, keyed by output key. Field order matches the persisted
// JSON layout consumed by the report assembler.
type Document struct {
	Metadata             Metadata          `json:"metadata"`
	ExecutiveSummaries   map[string]string `json:"executive_summaries"`
	IndustryNarratives   map[string]string `json:"industry_narratives"`
	SolutionDescriptions map[string]string `json:"solution_descriptions"`
	CategoryAnchors      map[string]string `json:"category_anchors"`
	ImpactExplanations   map[string]string `json:"impact_explanations"`
	Synergies            map[string]string `json:"synergies"`
	Methodology          map[string]string `json:"methodology"`
	Roadmaps             map[string]string `json:"roadmaps"`
	StrategicBlocks      map[string]string `json:"strategic_blocks"`
	SalesEnablement      map[string]string `json:"sales_enablement"`
}

// NewDocument returns a Document with every bucket allocated, so empty
// buckets serialize as {} rather than null.
func NewDocument() *Document {
	return &Document{
		ExecutiveSummaries:   map[string]string{},
		IndustryNarratives:   map[string]string{},
		SolutionDescriptions: map[string]string{},
		CategoryAnchors:      map[string]string{},
		ImpactExplanations:   map[string]string{},
		Synergies:            map[string]string{},
		Methodology:          map[string]string{},
		Roadmaps:             map[string]string{},
		StrategicBlocks:      map[string]string{},
		SalesEnablement:      map[string]string{},
	}
}

// BucketMap returns the entry map for a bucket name.
func (d *Document) BucketMap(b Bucket) (map[string]string, bool) {
	switch b {
	case BucketExecutiveSummaries:
		return d.ExecutiveSummaries, true
	case BucketIndustryNarratives:
		return d.IndustryNarratives, true
	case BucketSolutionDescriptions:
		return d.SolutionDescriptions, true
	case BucketCategoryAnchors:
		return d.CategoryAnchors, true
	case BucketImpactExplanations:
		return d.ImpactExplanations, true
	case BucketSynergies:
		return d.Synergies, true
	case BucketMethodology:
		return d.Methodology, true
	case BucketRoadmaps:
		return d.Roadmaps, true
	case BucketStrategicBlocks:
		return d.StrategicBlocks, true
	case BucketSalesEnablement:
		return d.SalesEnablement, true
	}
	return nil, false
}

// TotalEntries counts entries across all buckets.
func (d *Document) TotalEntries() int {
	n := 0
	for _, b := range Buckets() {
		m, _ := d.BucketMap(b)
		n += len(m)
	}
	return n
}
