package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

// Variation counts per family. The report assembler picks one variant
// at render time, so every variant must exist up front.
const (
	executiveVariations = 4
	industryVariations  = 3
	categoryVariations  = 2
)

// singletonBlocks are the one-off strategic blocks with no parameters.
// Key equals block type; they all land in the strategic bucket.
var singletonBlocks = []domain.BlockType{
	domain.BlockWhyNow,
	domain.BlockDIYVsPartner,
	domain.BlockReadinessAssessment,
	domain.BlockReportLimitations,
	domain.BlockRiskFactors,
	domain.BlockNextSteps,
	domain.BlockPartnerAcknowledgment,
}

// Build expands the configuration tables into the full ordered task
// list. It returns domain.ErrDuplicateKey (wrapped, naming the key) if
// two expansion rules ever collide — a configuration defect that must
// abort the run before any generation happens.
func Build(t Tables) ([]domain.Task, error) {
	var tasks []domain.Task

	// Executive summaries: risk tolerances × variations.
	for _, risk := range t.RiskTolerances {
		for v := 1; v <= executiveVariations; v++ {
			tasks = append(tasks, domain.Task{
				BlockType: domain.BlockExecutiveSummary,
				Params: map[string]string{
					"risk_tolerance": risk.Name,
					"variation":      strconv.Itoa(v),
				},
				OutputKey: fmt.Sprintf("executive_summary_%s_v%d", strings.ToLower(risk.Name), v),
				Bucket:    domain.BucketExecutiveSummaries,
			})
		}
	}

	// Industry narratives: industries × variations.
	for _, ind := range t.Industries {
		for v := 1; v <= industryVariations; v++ {
			tasks = append(tasks, domain.Task{
				BlockType: domain.BlockIndustryNarrative,
				Params: map[string]string{
					"industry":         ind.Name,
					"variation":        strconv.Itoa(v),
					"industry_factors": ind.Factors,
				},
				OutputKey: fmt.Sprintf("industry_%s_v%d", pathSlug(ind.Name), v),
				Bucket:    domain.BucketIndustryNarratives,
			})
		}
	}

	// Solution descriptions: one per solution, with that solution's row
	// of the impact matrix projected into a pre-rendered sub-table.
	for _, sol := range t.Solutions {
		tasks = append(tasks, domain.Task{
			BlockType: domain.BlockSolutionDescription,
			Params: map[string]string{
				"solution_name":   sol.Name,
				"roi_timeline":    sol.ROITimeline,
				"primary_impacts": sol.PrimaryImpacts,
				"sources":         sol.Sources,
				"impact_matrix":   impactSubTable(t, sol.Name),
			},
			OutputKey: "solution_" + solutionSlug(sol.Name),
			Bucket:    domain.BucketSolutionDescriptions,
		})
	}

	// Category anchors: categories × variations.
	for _, cat := range t.Categories {
		for v := 1; v <= categoryVariations; v++ {
			tasks = append(tasks, domain.Task{
				BlockType: domain.BlockCategoryAnchor,
				Params: map[string]string{
					"category":        cat.Name,
					"variation":       strconv.Itoa(v),
					"benchmark_range": cat.BenchmarkRange,
					"cost_components": cat.CostComponents,
				},
				OutputKey: fmt.Sprintf("category_%s_v%d", pathSlug(cat.Name), v),
				Bucket:    domain.BucketCategoryAnchors,
			})
		}
	}

	// Impact explanations: one per non-MINIMAL matrix cell, traversed in
	// Solutions × Categories order so output is deterministic. The cell's
	// severity selects the block type; MINIMAL cells are skipped — a
	// filter, not a transform.
	for _, sol := range t.Solutions {
		row, ok := t.ImpactMatrix[sol.Name]
		if !ok {
			continue
		}
		for _, cat := range t.Categories {
			cell, ok := row[cat.Name]
			if !ok || cell.Type == SeverityMinimal {
				continue
			}
			bt, err := impactBlockType(cell.Type)
			if err != nil {
				return nil, fmt.Errorf("impact matrix %s/%s: %w", sol.Name, cat.Name, err)
			}
			tasks = append(tasks, domain.Task{
				BlockType: bt,
				Params: map[string]string{
					"solution":           sol.Name,
					"category":           cat.Name,
					"conservative_range": cell.Conservative,
					"moderate_range":     cell.Moderate,
					"aggressive_range":   cell.Aggressive,
					"typical_range":      cell.Moderate,
					"sources":            sol.Sources,
				},
				OutputKey: fmt.Sprintf("impact_%s_%s", spaceSlug(sol.Name), pathSlug(cat.Name)),
				Bucket:    domain.BucketImpactExplanations,
			})
		}
	}

	// Synergies: one per curated pair.
	for _, syn := range t.Synergies {
		tasks = append(tasks, domain.Task{
			BlockType: domain.BlockSynergy,
			Params: map[string]string{
				"solution_a":          syn.SolutionA,
				"solution_b":          syn.SolutionB,
				"interaction_type":    syn.Interaction,
				"affected_categories": syn.Description,
			},
			OutputKey: fmt.Sprintf("synergy_%s_%s",
				truncate(spaceSlug(syn.SolutionA), 15),
				truncate(spaceSlug(syn.SolutionB), 15)),
			Bucket: domain.BucketSynergies,
		})
	}

	// Methodology: one per risk tolerance, carrying its constants.
	for _, risk := range t.RiskTolerances {
		tasks = append(tasks, domain.Task{
			BlockType: domain.BlockMethodology,
			Params: map[string]string{
				"risk_tolerance": risk.Name,
				"discount":       strconv.Itoa(risk.Discount),
				"cap":            strconv.Itoa(risk.Cap),
			},
			OutputKey: "methodology_" + strings.ToLower(risk.Name),
			Bucket:    domain.BucketMethodology,
		})
	}

	// Implementation roadmaps: one per complexity level.
	for _, cx := range t.ComplexityLevels {
		tasks = append(tasks, domain.Task{
			BlockType: domain.BlockImplementationRoadmap,
			Params:    map[string]string{"complexity": cx},
			OutputKey: "roadmap_" + strings.ToLower(cx),
			Bucket:    domain.BucketRoadmaps,
		})
	}

	// Singleton strategic blocks.
	for _, bt := range singletonBlocks {
		tasks = append(tasks, domain.Task{
			BlockType: bt,
			Params:    map[string]string{},
			OutputKey: string(bt),
			Bucket:    domain.BucketStrategicBlocks,
		})
	}

	// Sales enablement notes: one per curated combination.
	for _, combo := range t.SalesCombos {
		tasks = append(tasks, domain.Task{
			BlockType: domain.BlockSalesEnablement,
			Params: map[string]string{
				"solution_combo": combo.Combo,
				"industry":       combo.Industry,
				"company_size":   combo.CompanySize,
			},
			OutputKey: "sales_enablement_" + truncate(comboSlug(combo.Combo), 30),
			Bucket:    domain.BucketSalesEnablement,
		})
	}

	if err := checkUniqueKeys(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByType returns task counts per block type, for the pre-run
// breakdown listing.
func CountByType(tasks []domain.Task) map[domain.BlockType]int {
	counts := make(map[domain.BlockType]int)
	for _, t := range tasks {
		counts[t.BlockType]++
	}
	return counts
}

// SortedTypes returns the block types of a count map in name order.
func SortedTypes(counts map[domain.BlockType]int) []domain.BlockType {
	types := make([]domain.BlockType, 0, len(counts))
	for bt := range counts {
		types = append(types, bt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func impactBlockType(s Severity) (domain.BlockType, error) {
	switch s {
	case SeverityPrimary:
		return domain.BlockImpactPrimary, nil
	case SeveritySecondary:
		return domain.BlockImpactSecondary, nil
	case SeverityTertiary:
		return domain.BlockImpactTertiary, nil
	}
	return "", fmt.Errorf("severity %q has no block type", s)
}

// impactSubTable renders one solution's impact matrix row as the
// "- category: TYPE impact, range (moderate)" lines embedded in the
// solution description prompt.
func impactSubTable(t Tables, solution string) string {
	row, ok := t.ImpactMatrix[solution]
	if !ok {
		return ""
	}
	var lines []string
	for _, cat := range t.Categories {
		cell, ok := row[cat.Name]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s impact, %s (moderate)", cat.Name, cell.Type, cell.Moderate))
	}
	return strings.Join(lines, "\n")
}

func checkUniqueKeys(tasks []domain.Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.OutputKey]; dup {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateKey, t.OutputKey)
		}
		seen[t.OutputKey] = struct{}{}
	}
	return nil
}

// ─── Key slugs ──────────────────────────────────────────────────────────────
// Output keys are a wire format shared with the report assembler; the
// exact character substitutions below are load-bearing.

// pathSlug lowercases and folds both "/" and spaces to underscores.
func pathSlug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// spaceSlug lowercases and folds spaces only; "&" and "/" survive.
func spaceSlug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

// solutionSlug lowercases, folds spaces, then spells out "&".
func solutionSlug(s string) string {
	return strings.ReplaceAll(spaceSlug(s), "&", "and")
}

// comboSlug lowercases and folds spaces and "+" to underscores.
func comboSlug(s string) string {
	return strings.ReplaceAll(spaceSlug(s), "+", "_")
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
