package prompt

import "github.com/aaxis-ai/reportrunner/internal/domain"

// templates maps each block type to its prompt. {name} is a parameter
// slot filled by Render; {{name}} is a literal placeholder that survives
// into the generated content for the report assembler to fill.
var templates = map[domain.BlockType]string{

	domain.BlockExecutiveSummary: `
Generate an Executive Summary section for the Proof of Value report.

RISK TOLERANCE: {risk_tolerance}
VARIATION: {variation} of 4 (vary sentence structure and word choice)

REQUIREMENTS:
- 200-250 words total
- Start with ## Executive Summary header
- First element: Key metrics callout box (table in blockquote) showing
  projected annual savings, savings range, OPEX reduction %, solutions
  selected, and implementation complexity
- Second element: 2-3 sentence paragraph on what this means
- Third element: "Timeline to Value" table with 3 phases
- Final element: 1-2 sentences on methodology credibility and next step

PLACEHOLDERS TO USE:
- {{total_savings}} - e.g., "$4.2M"
- {{savings_range_low}} / {{savings_range_high}}
- {{opex_reduction_pct}} - e.g., "12.5%"
- {{num_solutions}}, {{industry}}, {{company_size}}, {{annual_revenue}},
  {{complexity_level}}

VARIATION GUIDANCE:
- Variation 1: Lead with the dollar figure in the opening sentence
- Variation 2: Lead with the percentage reduction
- Variation 3: Lead with industry context
- Variation 4: Lead with the transformation opportunity

OUTPUT: Complete section with headers, tables, and placeholders.
`,

	domain.BlockIndustryNarrative: `
Generate a Company Profile Analysis section for the {industry} sector.

VARIATION: {variation} of 3

REQUIREMENTS:
- 500-600 words (4-5 paragraphs plus visual elements)
- Start with ## Company Profile: {industry} header
- "Industry Benchmarks" table comparing user metrics to industry typical
- Paragraph on industry characteristics affecting supply chain economics
- "Solution Impact by Sector" table (4-5 key solutions)
- Paragraph on typical benchmarks and how this industry differs
- Paragraph on which solutions matter most for this industry and why
- Case study callout box with a specific company and numbers
- Paragraph on common pitfalls and success factors for this sector

INDUSTRY-SPECIFIC DATA TO INCORPORATE:
{industry_factors}

PARTNER MENTIONS (integrate naturally, 1-2 per block):
- For data/visibility challenges: mention Palantir Foundry capabilities
- For scale/ML needs: mention AWS infrastructure
- Frame AAXIS as the domain expert orchestrating these capabilities

VARIATION GUIDANCE:
- Variation 1: Lead with the biggest industry challenge
- Variation 2: Lead with a specific company example or case study
- Variation 3: Lead with benchmark comparison to other industries

PLACEHOLDERS TO USE: {{company_size}}, {{annual_revenue}},
{{user_inventory_turns}}, {{user_opex_pct}}

OUTPUT: Complete section with headers, tables, callouts, and placeholders.
`,

	domain.BlockSolutionDescription: `
Generate a Solution Impact Analysis block for: {solution_name}

REQUIREMENTS:
- 700-900 words total
- Start with ## {solution_name} header

STRUCTURE WITH VISUAL ELEMENTS:

### What It Does
- 150 words: plain-language explanation of the solution

### Impact Summary
- TABLE: impact by expense category (category, impact level, savings
  range, timeline)

### How It Works
- 150 words: technical approach without jargon

### Expected Timeline
- Callout box highlighting first measurable impact, full run-rate, and
  payback period, plus 100 words on what drives the timeline

### Evidence Base
- TABLE: case study summary (company, industry, result, source tier)
- 150 words of context on the evidence and why it's applicable

SOLUTION DATA:
- Name: {solution_name}
- ROI Timeline: {roi_timeline}
- Primary impacts: {primary_impacts}
- Key sources: {sources}

IMPACT DATA BY CATEGORY:
{impact_matrix}

PARTNER INTEGRATION (where relevant): AWS SageMaker for forecasting ML,
Palantir Foundry for cross-system integration, AWS IoT/streaming for
real-time data, Palantir AIP for decision automation.

OUTPUT: Full block with headers, tables, and callouts.
`,

	domain.BlockCategoryAnchor: `
Generate an introductory anchor section for the {category} savings breakdown.

VARIATION: {variation} of 2

REQUIREMENTS:
- 300-400 words
- Start with ### {category} header
- First element: benchmark comparison table (spend and % of revenue vs
  industry typical, using {{category_current_spend}} and
  {{category_pct_revenue}})
- Paragraph 1: define what this expense category includes
- Cost components callout box listing the included components
- Paragraph 2: what drives costs higher or lower in this category
- Paragraph 3: set up the solution-specific explanations that follow
  (DO NOT discuss specific solutions yet — those come after this anchor)

CATEGORY DATA:
- Name: {category}
- Benchmark range: {benchmark_range}
- Cost components: {cost_components}

VARIATION GUIDANCE:
- Variation 1: Lead with the benchmark data, then explain components
- Variation 2: Lead with a "most companies don't realize..." insight

PLACEHOLDERS TO USE: {{category_current_spend}}, {{category_pct_revenue}},
{{category_vs_benchmark}}, {{industry}}

OUTPUT: Complete section with header, tables, callouts, and placeholders.
`,

	domain.BlockImpactPrimary: `
Generate a PRIMARY impact explanation for how {solution} affects {category}.

REQUIREMENTS:
- 300-400 words
- Explain the direct mechanism of impact (cause → effect chain)
- Quantify the typical improvement range
- Cite 1-2 supporting sources
- Include a specific example or case study if available
- Acknowledge any dependencies or prerequisites

IMPACT DATA:
- Solution: {solution}
- Category: {category}
- Impact Type: PRIMARY
- Conservative range: {conservative_range}
- Moderate range: {moderate_range}
- Aggressive range: {aggressive_range}
- Sources: {sources}

OUTPUT: Explanation paragraph. Will be concatenated with other solution impacts.
`,

	domain.BlockImpactSecondary: `
Generate a SECONDARY impact explanation for how {solution} affects {category}.

REQUIREMENTS:
- 150-250 words
- Explain the indirect or spillover mechanism
- Quantify the typical improvement range (more conservative than PRIMARY)
- One supporting data point or logical explanation
- Frame as "in addition to direct benefits..."

IMPACT DATA:
- Solution: {solution}
- Category: {category}
- Impact Type: SECONDARY
- Conservative range: {conservative_range}
- Moderate range: {moderate_range}
- Sources: {sources}

OUTPUT: Explanation paragraph. Will be concatenated with other solution impacts.
`,

	domain.BlockImpactTertiary: `
Generate a TERTIARY impact mention for how {solution} affects {category}.

REQUIREMENTS:
- 50-100 words (1-2 sentences)
- Brief mention of minor correlation
- No detailed mechanism needed
- Frame as "additionally" or "minor improvements in"

IMPACT DATA:
- Solution: {solution}
- Category: {category}
- Impact Type: TERTIARY
- Typical range: {typical_range}

OUTPUT: Brief mention. Will be concatenated with other impacts.
`,

	domain.BlockSynergy: `
Generate a synergy explanation for when BOTH {solution_a} AND {solution_b} are selected.

REQUIREMENTS:
- 200-300 words
- Explain why combined impact differs from sum of parts
- If AMPLIFYING: explain the multiplier effect
- If OVERLAPPING: explain why compound discount is applied
- If SEQUENTIAL: explain the dependency/ordering benefit
- Specific mechanism, not generic "they work well together"

SYNERGY DATA:
- Solution A: {solution_a}
- Solution B: {solution_b}
- Interaction type: {interaction_type}
- Affected categories: {affected_categories}

OUTPUT: Synergy paragraph. Inserted after individual solution impacts when both selected.
`,

	domain.BlockMethodology: `
Generate the Methodology & Assumptions section for {risk_tolerance} risk tolerance.

REQUIREMENTS:
- 600-800 words (5-6 paragraphs plus visual elements)
- Start with ## Methodology & Assumptions header
- Paragraph 1: overview of the calculation approach and why it's defensible
- ### Model Parameters table: compound discount {discount}%, max category
  cap {cap}%, spillover cap 50%, size multiplier (varies)
- Paragraph 2: compound discount factor — why benefits don't stack linearly
- ### How Savings Are Calculated — step-by-step callout: sum raw impacts,
  apply compound discount for 2+ solutions, calculate spillover, apply
  category caps, apply size multiplier, convert percentages to dollars
- Paragraph 3: spillover effects between categories
- ### Evidence Foundation — source credibility table (McKinsey, Bain, CSCMP)
- Paragraph 4: what {risk_tolerance} means for interpretation and budgeting

FRAMING FOR THIS RISK LEVEL:
- Conservative: "Appropriate for budget approvals and board presentations"
- Moderate: "Expected outcome with competent execution"
- Aggressive: "Achievable with strong execution and organizational alignment"

CALCULATION CONSTANTS:
- Compound discount: {discount}%
- Max category cap: {cap}%
- Spillover cap: 50% of direct impact

OUTPUT: Full methodology section with headers, tables, and callouts.
`,

	domain.BlockImplementationRoadmap: `
Generate an Implementation Roadmap section for {complexity} implementation complexity.

COMPLEXITY LEVEL: {complexity}
- Low (1-2 solutions, quick wins): 3-6 month horizon
- Medium (3-5 solutions, mixed timelines): 6-12 month horizon
- High (6+ solutions, full transformation): 12-24 month horizon

REQUIREMENTS:
- 500-600 words
- Start with ## Implementation Roadmap header
- ### Phased Approach — main timeline table (phase, timeline, focus area,
  solutions, key deliverables, success metrics) plus a paragraph on the
  phasing logic and dependencies
- ### Phase 1: Foundation / ### Phase 2: Core Implementation /
  ### Phase 3: Optimization & Scale — 100 words each plus deliverables
- ### Critical Success Factors — callout box: data foundation, executive
  sponsorship, phased approach, change management, continuous measurement
- ### Start Tomorrow — one concrete action the reader can take immediately

SOLUTIONS TYPICALLY IN EACH PHASE:
- Foundation (0-6 months): Cycle Counting, Warehouse Slotting, Visibility
- Core (6-12 months): Demand Forecasting, Inventory Planning, SKU Rationalization
- Advanced (12-24 months): Order Optimization, Supplier Reliability, Obsolescence Control

PARTNER MENTIONS: data foundation work often leverages Palantir Foundry;
ML models deployed on AWS infrastructure; AAXIS as implementation partner
throughout.

PLACEHOLDERS: {{selected_solutions}}, {{num_solutions}}

OUTPUT: Full roadmap section with headers, tables, and callouts.
`,

	domain.BlockWhyNow: `
Generate a "Why Now" market timing section.

REQUIREMENTS:
- 300-400 words
- NOT artificial urgency or "ACT NOW" energy
- Real market dynamics that create timing relevance: AI/ML maturity curve
  (production-ready, not experimental), competitor adoption, cost of
  delay, technology convergence (cloud + AI + IoT inflection point)
- Reference recent (2024-2025) market data
- Frame as "here's what leading companies are doing"

SOURCES TO REFERENCE:
- Accenture 2024: 23% profitability gap for mature supply chains
- CSCMP 2025: $2.58T logistics market under pressure
- McKinsey 2024: AI adoption accelerating across supply chain functions

PARTNER CONTEXT: Palantir/AWS ecosystems maturing; implementation
patterns now proven; AAXIS methodology refined through multiple deployments.

OUTPUT: "Why Now" section. Will appear after Executive Summary.
`,

	domain.BlockDIYVsPartner: `
Generate a "Build vs. Buy vs. Partner" comparison section.

REQUIREMENTS:
- 400-500 words
- Three options compared honestly: DIY (internal team builds), big
  consultancy (Accenture/McKinsey), specialized partner (AAXIS model)
- For each option: typical timeline, relative cost structure, risk
  profile, best fit scenarios
- NOT a hard sell for AAXIS — an honest comparison that happens to favor
  AAXIS for mid-market

KEY DIFFERENTIATORS FOR AAXIS: domain expertise + AI fluency,
value-based delivery, Palantir/AWS partnerships for enterprise
capability without enterprise cost, "weeks not months" velocity.

PLACEHOLDER: {{company_size}} - affects which option makes sense

OUTPUT: Comparison section. Positioned to inform, not sell.
`,

	domain.BlockReadinessAssessment: `
Generate an Implementation Readiness Assessment section.

REQUIREMENTS:
- 400-500 words
- Start with ## Implementation Readiness Assessment header
- Opening paragraph framed as "questions to consider before our discovery call"
- ### Readiness Checklist — main assessment table with green/yellow/red
  bands for data quality (inventory accuracy >95%?), systems (ERP/WMS
  APIs?), sponsorship (exec champion?), resources (PM capacity?), and
  change readiness (transformation history?)
- ### Data Readiness / ### Organizational Readiness /
  ### Technical Readiness — one checklist callout box each
- Closing paragraph framing gaps as "areas we'll address in discovery",
  not blockers

PLACEHOLDER: {{selected_solutions}} - affects which readiness factors matter most

OUTPUT: Complete assessment section with headers, tables, and checklists.
`,

	domain.BlockReportLimitations: `
Generate a "What This Report Doesn't Include" section.

REQUIREMENTS:
- 150-200 words
- Honest about scope limitations; each limitation is a tease for deeper
  engagement: implementation cost modeling (requires discovery),
  competitive benchmarking (proprietary data), technical architecture
  design, change management planning, detailed project timeline
- Frame as "next steps in the conversation", not "things we won't tell you"
- End with a clear CTA for a discovery call

OUTPUT: Limitations section with embedded CTA.
`,

	domain.BlockRiskFactors: `
Generate a Risk Factors & Limitations section.

REQUIREMENTS:
- 300-400 words
- Categories of risk: execution risk (adoption, change management), data
  quality risk, technology risk (integration complexity, vendor
  dependencies), market risk (external factors)
- Model limitations: IT cost correlations have limited empirical data;
  Risk/Compliance savings are conservative estimates; industry-specific
  factors may shift projections
- Reference the sensitivity ranges already shown
- Frame as professional due diligence, not "reasons this won't work"

TONE: honest without undermining confidence. CFOs expect risk sections —
absence would be suspicious.

OUTPUT: Risk factors section.
`,

	domain.BlockNextSteps: `
Generate a Recommended Next Steps section.

REQUIREMENTS:
- 150-200 words
- 3-4 concrete next steps: review report with internal stakeholders
  (24-48 hours), identify questions and priority areas, schedule a
  discovery call with AAXIS, optionally request additional materials
- Primary CTA: schedule discovery call; secondary CTA: download
  supplementary materials
- Timeframe suggestions, not pressure

PLACEHOLDERS: {{scheduling_link}}, {{contact_email}}

OUTPUT: Next steps section with CTAs.
`,

	domain.BlockPartnerAcknowledgment: `
Generate a Partner Ecosystem acknowledgment block.

REQUIREMENTS:
- 100-150 words
- Brief acknowledgment of technology partners: Palantir (data integration
  and analytics platform) and AWS (cloud infrastructure and ML services)
- Frame as a best-of-breed ecosystem that AAXIS orchestrates
- Not a sales pitch for partners — context for the reader, explaining why
  these partnerships benefit the client

POSITIONING: AAXIS = domain expertise + implementation methodology;
partners = platform capabilities + scale; together = enterprise results
at mid-market accessibility.

OUTPUT: Brief partner acknowledgment.
`,

	domain.BlockSalesEnablement: `
Generate internal sales enablement notes for when a prospect selects: {solution_combo}

REQUIREMENTS:
- 200-300 words (for internal AAXIS use only)
- Key talking points for the follow-up call
- Relevant case studies to reference
- Potential objections to anticipate
- Qualification signals (what to listen for)
- Recommended next steps based on profile
- Red flags to watch for

SOLUTION COMBINATION: {solution_combo}
INDUSTRY: {industry}
COMPANY SIZE: {company_size}

OUTPUT: Internal notes formatted as bullet points.
`,
}
