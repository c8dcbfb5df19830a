// Package domain holds the core types of the block generation pipeline.
// A Task is one unit of work: a block type, its template parameters, and
// a catalog-unique output key. Tasks flow catalog → executor → aggregate.
package domain

// BlockType selects which prompt template a task renders. Closed set —
// the catalog only ever emits these.
type BlockType string

const (
	BlockExecutiveSummary      BlockType = "executive_summary"
	BlockIndustryNarrative     BlockType = "industry_narrative"
	BlockSolutionDescription   BlockType = "solution_description"
	BlockCategoryAnchor        BlockType = "category_anchor"
	BlockImpactPrimary         BlockType = "impact_primary"
	BlockImpactSecondary       BlockType = "impact_secondary"
	BlockImpactTertiary        BlockType = "impact_tertiary"
	BlockSynergy               BlockType = "synergy"
	BlockMethodology           BlockType = "methodology"
	BlockImplementationRoadmap BlockType = "implementation_roadmap"
	BlockWhyNow                BlockType = "why_now"
	BlockDIYVsPartner          BlockType = "diy_vs_partner"
	BlockReadinessAssessment   BlockType = "readiness_assessment"
	BlockReportLimitations     BlockType = "report_limitations"
	BlockRiskFactors           BlockType = "risk_factors"
	BlockNextSteps             BlockType = "next_steps"
	BlockPartnerAcknowledgment BlockType = "partner_acknowledgment"
	BlockSalesEnablement       BlockType = "sales_enablement"
)

// Task is an immutable unit of generation work. Created once by the
// catalog, executed once, never mutated.
type Task struct {
	BlockType BlockType
	Params    map[string]string
	OutputKey string
	Bucket    Bucket
}

// Result is the outcome of executing one Task. Exactly one Result is
// produced per Task, success or failure.
type Result struct {
	Key          string
	Content      string
	IsError      bool
	BlockType    BlockType
	Params       map[string]string
	Bucket       Bucket
	OutputTokens int
}
