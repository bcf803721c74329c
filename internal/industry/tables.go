package industry

// termTiers groups an industry's keyword hierarchy: primary terms weigh 3,
// secondary 2, context 1.
type termTiers struct {
	Primary   []string
	Secondary []string
	Context   []string
}

// Tier weights.
const (
	primaryWeight   = 3.0
	secondaryWeight = 2.0
	contextWeight   = 1.0
)

// FallbackIndustry is returned when no industry scores above zero. The
// constant name and confidence are part of the output contract.
const (
	FallbackIndustry   = "service"
	fallbackConfidence = 0.3
)

// industryTerms is the static classification table. Keys are the canonical
// industry names reported in matches.
var industryTerms = map[string]termTiers{
	"home services": {
		Primary:   []string{"hvac", "plumbing", "electrical", "roofing"},
		Secondary: []string{"contractor", "installation", "repair", "maintenance"},
		Context:   []string{"home", "house", "residential", "property"},
	},
	"landscaping": {
		Primary:   []string{"landscaping", "lawn", "irrigation"},
		Secondary: []string{"outdoor", "gardening", "mowing"},
		Context:   []string{"seasonal", "grounds", "yard"},
	},
	"ecommerce": {
		Primary:   []string{"ecommerce", "shopify", "amazon", "marketplace"},
		Secondary: []string{"online store", "fulfillment", "dropshipping", "retail"},
		Context:   []string{"shipping", "inventory", "brand", "consumer"},
	},
	"software": {
		Primary:   []string{"saas", "software", "application", "platform"},
		Secondary: []string{"subscription", "cloud", "automation", "development"},
		Context:   []string{"digital", "tech", "startup", "data"},
	},
	"healthcare": {
		Primary:   []string{"healthcare", "medical", "dental", "clinic"},
		Secondary: []string{"patient", "practice", "therapy", "wellness"},
		Context:   []string{"health", "care", "insurance", "treatment"},
	},
	"logistics": {
		Primary:   []string{"logistics", "trucking", "freight", "warehousing"},
		Secondary: []string{"delivery", "distribution", "shipping", "fleet"},
		Context:   []string{"supply chain", "transport", "routes", "cargo"},
	},
	"construction": {
		Primary:   []string{"construction", "builder", "remodeling", "excavation"},
		Secondary: []string{"commercial", "renovation", "concrete", "framing"},
		Context:   []string{"project", "site", "permit", "bid"},
	},
	"manufacturing": {
		Primary:   []string{"manufacturing", "fabrication", "machining", "assembly"},
		Secondary: []string{"factory", "production", "industrial", "equipment"},
		Context:   []string{"quality", "materials", "plant", "tooling"},
	},
	"food and beverage": {
		Primary:   []string{"restaurant", "catering", "bakery", "brewery"},
		Secondary: []string{"food", "beverage", "kitchen", "menu"},
		Context:   []string{"hospitality", "dining", "chef", "recipes"},
	},
	"professional services": {
		Primary:   []string{"accounting", "bookkeeping", "consulting", "legal"},
		Secondary: []string{"advisory", "tax", "compliance", "payroll"},
		Context:   []string{"clients", "firm", "billing", "professional"},
	},
	"fitness and wellness": {
		Primary:   []string{"gym", "fitness", "yoga", "crossfit"},
		Secondary: []string{"training", "coaching", "membership", "studio"},
		Context:   []string{"health", "exercise", "nutrition", "classes"},
	},
	"education": {
		Primary:   []string{"tutoring", "education", "childcare", "daycare"},
		Secondary: []string{"learning", "curriculum", "teaching", "school"},
		Context:   []string{"students", "children", "parents", "enrichment"},
	},
}
