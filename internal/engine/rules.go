package engine

import "hustlehub-backend/internal/business"

// rule is one canned recommendation. When nameInReason is set the Reason is a
// format string that receives the model name.
type rule struct {
	Task         string
	Reason       string
	Priority     Priority
	Impact       string
	nameInReason bool
}

// incomeThreshold splits the growth strategy for types whose playbook changes
// with scale.
const incomeThreshold = 10_000

var startupRules = map[business.Type][]rule{
	business.TypeSaaS: {
		{Task: "Build MVP with core features", Reason: "Essential foundation for %s", Priority: PriorityHigh, Impact: "Product development", nameInReason: true},
		{Task: "Interview 10 potential customers", Reason: "Validate product-market fit", Priority: PriorityHigh, Impact: "Market validation"},
		{Task: "Set up analytics and user tracking", Reason: "Measure user behavior and retention", Priority: PriorityMedium, Impact: "Data foundation"},
	},
	business.TypeEcommerce: {
		{Task: "Research and source 3 winning products", Reason: "Product selection determines success", Priority: PriorityHigh, Impact: "Product foundation"},
		{Task: "Set up Shopify store with professional design", Reason: "Professional storefront builds trust", Priority: PriorityHigh, Impact: "Brand credibility"},
		{Task: "Create compelling product photography", Reason: "Visual appeal drives conversions", Priority: PriorityMedium, Impact: "Conversion optimization"},
	},
	business.TypeConsulting: {
		{Task: "Define signature methodology and framework", Reason: "Unique approach justifies premium pricing", Priority: PriorityHigh, Impact: "Value proposition"},
		{Task: "Create case studies from past results", Reason: "Social proof for high-ticket sales", Priority: PriorityHigh, Impact: "Credibility building"},
		{Task: "Build premium landing page with testimonials", Reason: "Professional presence for $5K+ services", Priority: PriorityMedium, Impact: "Lead conversion"},
	},
	business.TypeContent: {
		{Task: "Define content niche and target audience", Reason: "Focused content builds engaged audience", Priority: PriorityHigh, Impact: "Audience building"},
		{Task: "Create content calendar for 30 days", Reason: "Consistency is key to growth", Priority: PriorityHigh, Impact: "Growth strategy"},
		{Task: "Set up professional filming/recording setup", Reason: "Quality content stands out", Priority: PriorityMedium, Impact: "Content quality"},
	},
	business.TypeRealEstate: {
		{Task: "Get pre-approved for investment loan", Reason: "Know your buying power", Priority: PriorityHigh, Impact: "Deal readiness"},
		{Task: "Analyze 10 potential investment properties", Reason: "Find deals with best ROI", Priority: PriorityHigh, Impact: "Deal sourcing"},
		{Task: "Build network of contractors and property managers", Reason: "Essential team for scaling", Priority: PriorityMedium, Impact: "Team building"},
	},
	business.TypeAgency: {
		{Task: "Choose agency specialization (PPC, SEO, Social, etc.)", Reason: "Specialists charge more than generalists", Priority: PriorityHigh, Impact: "Positioning"},
		{Task: "Create service packages with clear pricing", Reason: "Structured offerings scale better", Priority: PriorityHigh, Impact: "Service delivery"},
		{Task: "Build portfolio with 3 case studies", Reason: "Proof of results wins clients", Priority: PriorityMedium, Impact: "Credibility"},
	},
}

var startupFallback = rule{
	Task: "Define business model and target market", Reason: "Clear focus drives better results",
	Priority: PriorityHigh, Impact: "Strategic foundation",
}

// growthRule carries the below/at-or-above threshold bundles. Types whose
// strategy does not change with scale use the same bundle for both.
type growthRule struct {
	low  []rule
	high []rule
}

func flatGrowth(rules ...rule) growthRule {
	return growthRule{low: rules, high: rules}
}

var growthRules = map[business.Type]growthRule{
	business.TypeSaaS: {
		low: []rule{
			{Task: "Launch beta and get first 100 users", Reason: "User feedback drives product development", Priority: PriorityHigh, Impact: "User acquisition"},
			{Task: "Implement user onboarding flow", Reason: "Reduce churn and increase activation", Priority: PriorityHigh, Impact: "Retention optimization"},
		},
		high: []rule{
			{Task: "Optimize conversion funnel and reduce churn", Reason: "Improve unit economics for scaling", Priority: PriorityHigh, Impact: "Revenue optimization"},
			{Task: "Launch enterprise sales outreach", Reason: "Higher ACV accelerates growth", Priority: PriorityHigh, Impact: "Revenue acceleration"},
		},
	},
	business.TypeEcommerce: flatGrowth(
		rule{Task: "Scale winning products with increased ad spend", Reason: "Double down on what's working", Priority: PriorityHigh, Impact: "Revenue scaling"},
		rule{Task: "Test 3 new product variations", Reason: "Expand successful product lines", Priority: PriorityMedium, Impact: "Product expansion"},
		rule{Task: "Optimize product pages for higher conversion", Reason: "Small improvements compound at scale", Priority: PriorityMedium, Impact: "Conversion optimization"},
	),
	business.TypeConsulting: flatGrowth(
		rule{Task: "Conduct 5 high-value discovery calls", Reason: "Direct path to $5K+ deals", Priority: PriorityHigh, Impact: "Revenue generation"},
		rule{Task: "Create thought leadership content", Reason: "Authority content attracts premium clients", Priority: PriorityMedium, Impact: "Brand positioning"},
		rule{Task: "Ask existing clients for referrals", Reason: "Referrals have highest close rate", Priority: PriorityHigh, Impact: "Lead generation"},
	),
	business.TypeContent: flatGrowth(
		rule{Task: "Post 3 pieces of content daily", Reason: "Consistency builds audience", Priority: PriorityHigh, Impact: "Audience growth"},
		rule{Task: "Reach out to 10 brands for partnerships", Reason: "Monetize your audience", Priority: PriorityHigh, Impact: "Revenue generation"},
		rule{Task: "Analyze top performing content and create more", Reason: "Double down on what works", Priority: PriorityMedium, Impact: "Growth optimization"},
	),
	business.TypeRealEstate: flatGrowth(
		rule{Task: "Make offers on 3 investment properties", Reason: "Volume of offers leads to deals", Priority: PriorityHigh, Impact: "Deal acquisition"},
		rule{Task: "Refinance existing properties for better rates", Reason: "Improve cash flow and equity", Priority: PriorityMedium, Impact: "Portfolio optimization"},
		rule{Task: "Network with wholesalers and agents", Reason: "Access to off-market deals", Priority: PriorityMedium, Impact: "Deal flow"},
	),
	business.TypeAgency: flatGrowth(
		rule{Task: "Pitch 10 potential clients this week", Reason: "Sales activity drives revenue", Priority: PriorityHigh, Impact: "Client acquisition"},
		rule{Task: "Deliver exceptional results for current clients", Reason: "Results lead to referrals and retention", Priority: PriorityHigh, Impact: "Client satisfaction"},
		rule{Task: "Create case study from best client result", Reason: "Social proof for future sales", Priority: PriorityMedium, Impact: "Marketing asset"},
	),
}

var growthFallback = rule{
	Task: "Define your core growth channel and double down", Reason: "Focused growth beats scattered effort",
	Priority: PriorityMedium, Impact: "Growth strategy",
}

var optimizationRules = map[business.Type][]rule{
	business.TypeSaaS: {
		{Task: "Analyze churn data and implement retention features", Reason: "Reduce churn to maximize LTV", Priority: PriorityHigh, Impact: "Revenue retention"},
		{Task: "Launch enterprise tier with premium features", Reason: "Increase average revenue per user", Priority: PriorityMedium, Impact: "Revenue expansion"},
	},
	business.TypeEcommerce: {
		{Task: "Implement email marketing automation", Reason: "Increase customer lifetime value", Priority: PriorityMedium, Impact: "Revenue optimization"},
		{Task: "Negotiate better supplier terms", Reason: "Improve profit margins", Priority: PriorityMedium, Impact: "Profitability"},
	},
}

var optimizationFallback = rule{
	Task: "Analyze metrics and optimize key bottlenecks", Reason: "Systematic optimization drives growth",
	Priority: PriorityMedium, Impact: "Performance optimization",
}

// incomeGoalRule is the per-band canned task for income goals; the Reason is
// a format string receiving the formatted monthly target.
type incomeGoalRule struct {
	Task   string
	Reason string
	Impact string
}

var incomeGoalBands = []Band[incomeGoalRule]{
	{Above: 50_000, Value: incomeGoalRule{
		Task:   "Focus on enterprise deals and strategic partnerships",
		Reason: "Need $%s/month - requires big moves",
		Impact: "High-value revenue",
	}},
	{Above: 20_000, Value: incomeGoalRule{
		Task:   "Scale proven systems and hire team members",
		Reason: "$%s/month requires leverage",
		Impact: "Scalable growth",
	}},
	{Above: 5_000, Value: incomeGoalRule{
		Task:   "Increase prices and focus on premium clients",
		Reason: "$%s/month needs higher-value work",
		Impact: "Revenue per client",
	}},
}
