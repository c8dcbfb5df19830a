// Package catalog expands the static configuration tables into the full
// ordered list of generation tasks. Pure — no I/O, no concurrency, no
// randomness: two calls over the same tables produce identical output.
package catalog

// Severity tiers for a (solution, category) cell of the impact matrix,
// highest to lowest. Minimal is a sentinel: generate nothing.
type Severity string

const (
	SeverityPrimary   Severity = "PRIMARY"
	SeveritySecondary Severity = "SECONDARY"
	SeverityTertiary  Severity = "TERTIARY"
	SeverityMinimal   Severity = "MINIMAL"
)

// Industry is one row of the industry table.
type Industry struct {
	Name    string
	Factors string
}

// Solution is one row of the solution table.
type Solution struct {
	Name           string
	ROITimeline    string
	PrimaryImpacts string
	Sources        string
}

// Category is one expense category row.
type Category struct {
	Name           string
	BenchmarkRange string
	CostComponents string
}

// SynergyPair is a hand-curated solution pairing — not a cartesian
// product over solutions.
type SynergyPair struct {
	SolutionA   string
	SolutionB   string
	Interaction string
	Description string
}

// RiskTolerance carries the discount and cap constants for one risk
// posture, in whole percent.
type RiskTolerance struct {
	Name     string
	Discount int
	Cap      int
}

// Impact is one cell of the impact matrix: a severity tier plus the
// savings range under each risk posture.
type Impact struct {
	Type         Severity
	Conservative string
	Moderate     string
	Aggressive   string
}

// SalesCombo is one curated sales-enablement tuple.
type SalesCombo struct {
	Combo       string
	Industry    string
	CompanySize string
}

// Tables is the complete immutable configuration the catalog expands.
// Load once at startup; Build takes it as explicit input rather than
// reading ambient state. Expansion order follows the slice order here —
// the ImpactMatrix map is only ever traversed via Solutions × Categories
// so iteration stays deterministic.
type Tables struct {
	Industries       []Industry
	Solutions        []Solution
	Categories       []Category
	Synergies        []SynergyPair
	RiskTolerances   []RiskTolerance
	ComplexityLevels []string
	ImpactMatrix     map[string]map[string]Impact
	SalesCombos      []SalesCombo
}

// DefaultTables returns the built-in savings model data.
func DefaultTables() Tables {
	return Tables{
		Industries:       industries,
		Solutions:        solutions,
		Categories:       categories,
		Synergies:        synergyPairs,
		RiskTolerances:   riskTolerances,
		ComplexityLevels: complexityLevels,
		ImpactMatrix:     impactMatrix,
		SalesCombos:      salesCombos,
	}
}

var industries = []Industry{
	{
		Name: "Food & Beverage",
		Factors: `- Inventory turnover: 8-15x per year (highest of all sectors)
- Spoilage/obsolescence: +30-50% above baseline risk
- Forecasting ROI: +20-30% above baseline due to perishability
- Key challenge: Balancing freshness with availability
- Example companies: Sunsweet (30% spoilage reduction), Walmart ($86M food waste savings)
- Temperature-controlled logistics adds complexity
- Promotional volatility higher than other sectors`,
	},
	{
		Name: "Industrial Distribution",
		Factors: `- Inventory turnover: 2-4x per year (slowest, highest value per SKU)
- Demand patterns: Stable, predictable, project-driven
- Lead times: Often 4-12 weeks from international suppliers
- Forecast benefits: -10-15% vs baseline (stable demand means less forecast value)
- Supplier optimization: +20-25% above baseline (long lead times = bigger impact)
- Carrying costs: 25-35% of inventory value (higher due to capital intensity)
- Example: Sparex ($5M savings through supplier visibility)`,
	},
	{
		Name: "Retail/E-commerce",
		Factors: `- Fulfillment speed: Sub-24 hour expectations
- Returns rate: 16.5-17.9% (online), highest of all sectors
- Warehouse optimization: +25-35% ROI above baseline
- Obsolescence risk: +20-30% for fashion/seasonal segments
- Order complexity: Multi-channel, split shipments, click-and-collect
- Peak seasonality: 30-40% of volume in Q4
- Real-time visibility critical for available-to-promise`,
	},
	{
		Name: "Pharmaceutical",
		Factors: `- Service level requirements: >98% (regulatory mandated)
- Serialization/track-trace: Required for compliance
- Automation benefits: -10-20% vs baseline (regulatory constraints limit flexibility)
- Cold chain: Adds 15-25% to logistics costs
- Shelf life management: Critical for compliance
- Logistics costs: ~2% of sales, 7-8% of COGS (lower due to outsourcing)
- Risk/compliance: Higher weighting than other sectors`,
	},
	{
		Name: "Technology/Electronics",
		Factors: `- Product lifecycle: 12-18 months (rapid obsolescence)
- Obsolescence risk: HIGHEST priority — 1pp over-forecast = $1.58M loss
- Forecast accuracy: >95% target (critical for component planning)
- Example: Lenovo (20% surplus inventory reduction, 25% forecast accuracy gain)
- Component lead times: Highly variable (chip shortages)
- Reverse logistics: Growing importance (sustainability, refurbishment)
- New product introduction: Frequent, high-stakes inventory positioning`,
	},
	{
		Name: "Fashion/Apparel",
		Factors: `- Product lifecycle: 6-12 weeks (fastest turns)
- Obsolescence rate: 20-30% of inventory without controls
- Markdown strategy: Critical — typical 10%/20%/50% at 30/60/90 days
- Key solutions: Obsolescence control, demand forecasting, SKU rationalization
- Size/color proliferation: Compounds inventory complexity
- Seasonality: Extreme (2-4 major seasons)
- Return rates: 15-20% for online`,
	},
	{
		Name: "CPG",
		Factors: `- Baseline/reference industry for model calibration
- Standard multipliers apply
- Promotional lift: 3-5x baseline during promotions
- Trade spend optimization: Adjacent opportunity
- Demand sensing: Real-time POS data increasingly available
- Retailer collaboration: VMI/CPFR programs common
- Example: P&G ($1B savings through SKU rationalization)`,
	},
}

var solutions = []Solution{
	{
		Name:           "Demand Forecasting AI",
		ROITimeline:    "12-18 months",
		PrimaryImpacts: "Returns/Obsolescence, Inventory Carrying",
		Sources:        "McKinsey (50% error reduction), Sunsweet (30% spoilage reduction), Lenovo (25% accuracy improvement), IBM AI studies",
	},
	{
		Name:           "Inventory Planning & Replenishment",
		ROITimeline:    "12-18 months",
		PrimaryImpacts: "Returns/Obsolescence, Inventory Carrying, Order Processing",
		Sources:        "McKinsey Supply Chain 4.0 (-35% inventory), IDC (25% reduction in one year), Bain distribution studies",
	},
	{
		Name:           "Supplier Lead Time & Reliability",
		ROITimeline:    "12-18 months",
		PrimaryImpacts: "Warehousing, Inventory Carrying, Risk/Compliance",
		Sources:        "Sparex ($5M savings, 20% transportation reduction), Gartner (20% logistics reduction), KPMG supplier studies",
	},
	{
		Name:           "SKU Rationalization Analytics",
		ROITimeline:    "90 days - 18 months",
		PrimaryImpacts: "Returns/Obsolescence, Inventory Carrying, Warehousing",
		Sources:        "P&G ($1B savings), Mattel ($797M over 2 years), Distributor case study (bottom 36% SKUs = 3% sales)",
	},
	{
		Name:           "Warehouse Layout & Slotting",
		ROITimeline:    "4-6 weeks",
		PrimaryImpacts: "Warehousing, Order Processing",
		Sources:        "Plant Therapy (300% productivity), GEODIS (15-60% efficiency), enVista (5-15% pick improvement), FORTNA",
	},
	{
		Name:           "Cycle Counting & Inventory Accuracy",
		ROITimeline:    "2-3 months",
		PrimaryImpacts: "Warehousing, Order Processing, Returns/Obsolescence",
		Sources:        "Vimaan (75% labor reduction, 100% accuracy), Auburn RFID Lab (70%→95% accuracy), WERC benchmarks",
	},
	{
		Name:           "Order Pattern Optimization",
		ROITimeline:    "6-12 months",
		PrimaryImpacts: "Order Processing, Warehousing, Sales/Marketing",
		Sources:        "Gartner (40% manual reduction), KIBO (30% CS cost reduction), Komar case (8 hours → 8 minutes)",
	},
	{
		Name:           "Inventory Visibility & Real-Time Data",
		ROITimeline:    "12-18 months",
		PrimaryImpacts: "Order Processing, Warehousing, Risk/Compliance",
		Sources:        "McKinsey (35% stockout reduction), 93% cost savings survey, RFID/IoT research",
	},
	{
		Name:           "Obsolescence & Aging Control",
		ROITimeline:    "6-12 months",
		PrimaryImpacts: "Returns/Obsolescence, Inventory Carrying",
		Sources:        "Race Winning Brands (€3.5M excess eliminated), Avery Dennison (8% perish rate → <3% target)",
	},
}

var categories = []Category{
	{
		Name:           "Inventory Carrying Cost",
		BenchmarkRange: "2.5-4% of revenue",
		CostComponents: "Cost of capital, storage costs, insurance, shrinkage, obsolescence risk, handling",
	},
	{
		Name:           "Warehousing & Logistics",
		BenchmarkRange: "5-10% of revenue",
		CostComponents: "Facility costs, labor (picking/packing/shipping), equipment, transportation, 3PL fees",
	},
	{
		Name:           "Sales/Marketing/Customer Service",
		BenchmarkRange: "6-12% of revenue",
		CostComponents: "Customer acquisition, retention programs, service center operations, returns processing",
	},
	{
		Name:           "Order Processing & Back-Office",
		BenchmarkRange: "3-6% of revenue",
		CostComponents: "Order entry, invoicing, exception handling, EDI/integration, customer communication",
	},
	{
		Name:           "Returns/Obsolescence/Shrinkage",
		BenchmarkRange: "1-4% of revenue",
		CostComponents: "Returned goods processing, markdown losses, write-offs, disposal, shrinkage/theft",
	},
	{
		Name:           "IT Costs (Supply Chain)",
		BenchmarkRange: "1.5-4% of revenue",
		CostComponents: "ERP/WMS licenses, integration costs, maintenance, development, cloud infrastructure",
	},
	{
		Name:           "Risk & Compliance",
		BenchmarkRange: "0.5-2% of revenue",
		CostComponents: "Audit costs, regulatory compliance, insurance, quality control, traceability systems",
	},
}

var synergyPairs = []SynergyPair{
	{
		SolutionA: "Demand Forecasting AI", SolutionB: "Inventory Planning & Replenishment", Interaction: "amplifying",
		Description: "Forecasting provides the demand signal that Planning uses to optimize. Better forecasts → more aggressive inventory policies without service risk.",
	},
	{
		SolutionA: "Warehouse Layout & Slotting", SolutionB: "Cycle Counting & Inventory Accuracy", Interaction: "amplifying",
		Description: "Accurate inventory data enables optimal slotting. Slotting improvements increase count efficiency. Virtuous cycle.",
	},
	{
		SolutionA: "SKU Rationalization Analytics", SolutionB: "Obsolescence & Aging Control", Interaction: "overlapping",
		Description: "Both target inventory quality. Rationalization prevents future obsolescence; Aging Control manages current exposure. Some benefit overlap.",
	},
	{
		SolutionA: "Inventory Visibility & Real-Time Data", SolutionB: "Order Pattern Optimization", Interaction: "sequential",
		Description: "Visibility provides the data foundation. Order optimization uses that data to improve fulfillment. Must sequence correctly.",
	},
	{
		SolutionA: "Demand Forecasting AI", SolutionB: "Obsolescence & Aging Control", Interaction: "sequential",
		Description: "Forecasting prevents over-ordering. Aging Control manages existing excess. Together they address both prevention and cure.",
	},
	{
		SolutionA: "Inventory Planning & Replenishment", SolutionB: "Supplier Lead Time & Reliability", Interaction: "amplifying",
		Description: "Better supplier data enables tighter planning parameters. Reliable suppliers allow lower safety stock. Multiplicative effect.",
	},
	{
		SolutionA: "Warehouse Layout & Slotting", SolutionB: "Order Pattern Optimization", Interaction: "amplifying",
		Description: "Slotting optimizes physical layout. Order optimization improves logical fulfillment. Together they maximize throughput.",
	},
	{
		SolutionA: "Cycle Counting & Inventory Accuracy", SolutionB: "Inventory Visibility & Real-Time Data", Interaction: "sequential",
		Description: "Counting establishes accuracy baseline. Visibility maintains it in real-time. Foundation then scale.",
	},
	{
		SolutionA: "SKU Rationalization Analytics", SolutionB: "Demand Forecasting AI", Interaction: "amplifying",
		Description: "Fewer SKUs = easier to forecast. Better forecasts inform rationalization decisions. Reinforcing loop.",
	},
	{
		SolutionA: "Supplier Lead Time & Reliability", SolutionB: "Inventory Visibility & Real-Time Data", Interaction: "amplifying",
		Description: "Supplier visibility enables proactive exception management. Reliability data improves planning parameters.",
	},
}

var riskTolerances = []RiskTolerance{
	{Name: "Conservative", Discount: 70, Cap: 20},
	{Name: "Moderate", Discount: 80, Cap: 40},
	{Name: "Aggressive", Discount: 85, Cap: 60},
}

var complexityLevels = []string{"Low", "Medium", "High"}

var salesCombos = []SalesCombo{
	{Combo: "Demand Forecasting AI + Inventory Planning", Industry: "Industrial Distribution", CompanySize: "Mid-Market"},
	{Combo: "SKU Rationalization Analytics", Industry: "Retail/E-commerce", CompanySize: "Small"},
	{Combo: "Warehouse Layout & Slotting + Cycle Counting", Industry: "Industrial Distribution", CompanySize: "Mid-Market"},
	{Combo: "Demand Forecasting AI + Obsolescence & Aging Control", Industry: "Food & Beverage", CompanySize: "Mid-Market"},
	{Combo: "Full Suite (all 9)", Industry: "Enterprise", CompanySize: "Enterprise"},
	{Combo: "Inventory Visibility + Order Pattern Optimization", Industry: "Retail/E-commerce", CompanySize: "Mid-Market"},
	{Combo: "SKU Rationalization + Demand Forecasting", Industry: "CPG", CompanySize: "Enterprise"},
	{Combo: "Supplier Lead Time + Inventory Planning", Industry: "Industrial Distribution", CompanySize: "Enterprise"},
	{Combo: "Cycle Counting + Inventory Visibility", Industry: "Pharmaceutical", CompanySize: "Mid-Market"},
	{Combo: "Warehouse Slotting only", Industry: "Industrial Distribution", CompanySize: "Small"},
}

// impactMatrix maps solution → category → impact cell. Cells with
// SeverityMinimal produce no explanation task.
var impactMatrix = map[string]map[string]Impact{
	"Demand Forecasting AI": {
		"Inventory Carrying Cost":          {SeverityTertiary, "-3% to -5%", "-5% to -8%", "-10% to -15%"},
		"Warehousing & Logistics":          {SeverityTertiary, "-2% to -3%", "-3% to -5%", "-5% to -8%"},
		"Sales/Marketing/Customer Service": {SeverityTertiary, "+1% to +2%", "+2% to +3%", "+3% to +5%"},
		"Order Processing & Back-Office":   {SeverityTertiary, "-2% to -3%", "-3% to -5%", "-5% to -7%"},
		"Returns/Obsolescence/Shrinkage":   {SeveritySecondary, "-5% to -8%", "-10% to -15%", "-15% to -25%"},
		"IT Costs (Supply Chain)":          {SeverityMinimal, "0%", "0%", "0%"},
		"Risk & Compliance":                {SeverityTertiary, "-2% to -3%", "-3% to -5%", "-5% to -8%"},
	},
	"Inventory Planning & Replenishment": {
		"Inventory Carrying Cost":          {SeveritySecondary, "-5% to -10%", "-10% to -20%", "-20% to -35%"},
		"Warehousing & Logistics":          {SeverityTertiary, "-3% to -5%", "-5% to -10%", "-10% to -15%"},
		"Sales/Marketing/Customer Service": {SeverityTertiary, "0% to +2%", "+2% to +5%", "+5% to +10%"},
		"Order Processing & Back-Office":   {SeveritySecondary, "-5% to -8%", "-8% to -12%", "-12% to -20%"},
		"Returns/Obsolescence/Shrinkage":   {SeverityPrimary, "-10% to -15%", "-15% to -25%", "-25% to -40%"},
		"IT Costs (Supply Chain)":          {SeverityMinimal, "0%", "0%", "0%"},
		"Risk & Compliance":                {SeverityTertiary, "-3% to -5%", "-5% to -8%", "-8% to -12%"},
	},
	"Supplier Lead Time & Reliability": {
		"Inventory Carrying Cost":          {SeveritySecondary, "-8% to -12%", "-12% to -18%", "-18% to -25%"},
		"Warehousing & Logistics":          {SeveritySecondary, "-10% to -15%", "-15% to -20%", "-20% to -25%"},
		"Sales/Marketing/Customer Service": {SeverityTertiary, "+5% to +8%", "+8% to +12%", "+12% to +15%"},
		"Order Processing & Back-Office":   {SeverityTertiary, "-3% to -5%", "-5% to -8%", "-8% to -12%"},
		"Returns/Obsolescence/Shrinkage":   {SeverityTertiary, "-3% to -5%", "-5% to -8%", "-8% to -12%"},
		"IT Costs (Supply Chain)":          {SeverityMinimal, "0%", "0%", "0%"},
		"Risk & Compliance":                {SeverityTertiary, "-5% to -8%", "-8% to -12%", "-12% to -18%"},
	},
	"SKU Rationalization Analytics": {
		"Inventory Carrying Cost":          {SeverityPrimary, "-10% to -15%", "-15% to -25%", "-25% to -40%"},
		"Warehousing & Logistics":          {SeveritySecondary, "-8% to -12%", "-12% to -18%", "-18% to -25%"},
		"Sales/Marketing/Customer Service": {SeverityTertiary, "-5% to -8%", "-3% to -5%", "0%"},
		"Order Processing & Back-Office":   {SeveritySecondary, "-5% to -10%", "-10% to -15%", "-15% to -20%"},
		"Returns/Obsolescence/Shrinkage":   {SeverityPrimary, "-15% to -20%", "-20% to -30%", "-30% to -50%"},
		"IT Costs (Supply Chain)":          {SeverityTertiary, "-5% to -8%", "-8% to -12%", "-12% to -18%"},
		"Risk & Compliance":                {SeverityTertiary, "-3% to -5%", "-5% to -8%", "-8% to -12%"},
	},
	"Warehouse Layout & Slotting": {
		"Inventory Carrying Cost":          {SeverityTertiary, "-2% to -4%", "-4% to -8%", "-8% to -12%"},
		"Warehousing & Logistics":          {SeverityPrimary, "-5% to -10%", "-10% to -20%", "-20% to -50%"},
		"Sales/Marketing/Customer Service": {SeverityTertiary, "+1% to +2%", "+2% to +3%", "+3% to +5%"},
		"Order Processing & Back-Office":   {SeveritySecondary, "-3% to -5%", "-5% to -10%", "-10% to -20%"},
		"Returns/Obsolescence/Shrinkage":   {SeverityTertiary, "-3% to -5%", "-5% to -8%", "-8% to -12%"},
		"IT Costs (Supply Chain)":          {SeverityMinimal, "0%", "0%", "0%"},
		"Risk & Compliance":                {SeverityTertiary, "-2% to -3%", "-3% to -5%", "-5% to -8%"},
	},
	"Cycle Counting & Inventory Accuracy": {
		"Inventory Carrying Cost":          {SeverityTertiary, "-3% to -5%", "-5% to -10%", "-10% to -15%"},
		"Warehousing & Logistics":          {SeverityPrimary, "-20% to -30%", "-40% to -60%", "-70% to -75%"},
		"Sales/Marketing/Customer Service": {SeverityTertiary, "+1% to +2%", "+2% to +4%", "+4% to +6%"},
		"Order Processing & Back-Office":   {SeveritySecondary, "-5% to -8%", "-8% to -12%", "-12% to -20%"},
		"Returns/Obsolescence/Shrinkage":   {SeveritySecondary, "-5% to -8%", "-8% to -15%", "-15% to -25%"},
		"IT Costs (Supply Chain)":          {SeverityMinimal, "0%", "0%", "0%"},
		"Risk & Compliance":                {SeverityTertiary, "-3% to -5%", "-5% to -10%", "-10% to -15%"},
	},
	"Order Pattern Optimization": {
		"Inventory Carrying Cost":          {SeveritySecondary, "-5% to -10%", "-10% to -15%", "-15% to -20%"},
		"Warehousing & Logistics":          {SeveritySecondary, "-10% to -15%", "-15% to -25%", "-25% to -35%"},
		"Sales/Marketing/Customer Service": {SeveritySecondary, "+10% to +15%", "+15% to +25%", "+25% to +35%"},
		"Order Processing & Back-Office":   {SeverityPrimary, "-15% to -25%", "-25% to -40%", "-40% to -60%"},
		"Returns/Obsolescence/Shrinkage":   {SeverityTertiary, "-5% to -8%", "-8% to -12%", "-12% to -18%"},
		"IT Costs (Supply Chain)":          {SeverityMinimal, "0%", "0%", "0%"},
		"Risk & Compliance":                {SeverityTertiary, "-2% to -4%", "-4% to -6%", "-6% to -10%"},
	},
	"Inventory Visibility & Real-Time Data": {
		"Inventory Carrying Cost":          {SeveritySecondary, "-8% to -12%", "-12% to -18%", "-18% to -25%"},
		"Warehousing & Logistics":          {SeveritySecondary, "-10% to -15%", "-15% to -20%", "-20% to -25%"},
		"Sales/Marketing/Customer Service": {SeverityTertiary, "+5% to +8%", "+8% to +12%", "+12% to +15%"},
		"Order Processing & Back-Office":   {SeverityPrimary, "-15% to -20%", "-20% to -30%", "-30% to -40%"},
		"Returns/Obsolescence/Shrinkage":   {SeveritySecondary, "-5% to -8%", "-8% to -15%", "-15% to -25%"},
		"IT Costs (Supply Chain)":          {SeverityMinimal, "0%", "0%", "0%"},
		"Risk & Compliance":                {SeverityTertiary, "-3% to -5%", "-5% to -10%", "-10% to -15%"},
	},
	"Obsolescence & Aging Control": {
		"Inventory Carrying Cost":          {SeveritySecondary, "-5% to -8%", "-8% to -12%", "-12% to -20%"},
		"Warehousing & Logistics":          {SeverityTertiary, "-3% to -5%", "-5% to -8%", "-8% to -12%"},
		"Sales/Marketing/Customer Service": {SeverityTertiary, "0%", "0% to +2%", "+2% to +5%"},
		"Order Processing & Back-Office":   {SeverityTertiary, "-2% to -3%", "-3% to -5%", "-5% to -8%"},
		"Returns/Obsolescence/Shrinkage":   {SeverityPrimary, "-20% to -30%", "-30% to -50%", "-50% to -70%"},
		"IT Costs (Supply Chain)":          {SeverityMinimal, "0%", "0%", "0%"},
		"Risk & Compliance":                {SeverityTertiary, "-2% to -4%", "-4% to -8%", "-8% to -12%"},
	},
}
