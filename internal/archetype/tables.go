package archetype

import "github.com/sells-group/advisor-cli/internal/model"

// archetypes maps each winning competency to its fixed display title and
// leverage thesis.
var archetypes = map[model.Competency]model.Archetype{
	model.CompetencySalesMarketing: {
		Competency: model.CompetencySalesMarketing,
		Title:      "The Growth Operator",
		LeverageThesis: "Target businesses with a solid product and loyal customers but " +
			"stagnant or founder-dependent demand generation. Your sales and marketing " +
			"strength turns an under-marketed business into a growth story without " +
			"changing what it sells.",
	},
	model.CompetencyOperationsSystems: {
		Competency: model.CompetencyOperationsSystems,
		Title:      "The Systems Builder",
		LeverageThesis: "Target businesses with strong demand but messy, manual, or " +
			"tribal-knowledge operations. Your ability to build processes and systems " +
			"converts operational chaos into margin and makes the business sellable " +
			"again at a higher multiple.",
	},
	model.CompetencyFinanceAnalytics: {
		Competency: model.CompetencyFinanceAnalytics,
		Title:      "The Value Engineer",
		LeverageThesis: "Target businesses with weak financial hygiene: no clean books, " +
			"no pricing discipline, no cost visibility. Your analytical strength " +
			"surfaces mispriced work and hidden leaks, often recovering several points " +
			"of margin in the first year.",
	},
	model.CompetencyTeamCulture: {
		Competency: model.CompetencyTeamCulture,
		Title:      "The People Leader",
		LeverageThesis: "Target businesses where the seller is the culture and key " +
			"employees are a flight risk. Your leadership strength de-risks the " +
			"transition, retains the team through the ownership change, and unlocks " +
			"businesses other buyers are afraid of.",
	},
	model.CompetencyProductTechnology: {
		Competency: model.CompetencyProductTechnology,
		Title:      "The Modernizer",
		LeverageThesis: "Target durable offline businesses running on outdated tooling " +
			"and no digital channel. Your product and technology strength digitizes " +
			"intake, scheduling, and delivery, compounding an already healthy " +
			"customer base.",
	},
}

// competencyVocab holds the keyword vocabulary scored against each
// competency's evidence text.
var competencyVocab = map[model.Competency][]string{
	model.CompetencySalesMarketing: {
		"sales", "marketing", "revenue", "pipeline", "leads", "conversion",
		"brand", "campaign", "customers", "funnel", "quota", "prospect",
	},
	model.CompetencyOperationsSystems: {
		"operations", "process", "systems", "efficiency", "logistics",
		"workflow", "automation", "supply", "quality", "throughput", "lean",
	},
	model.CompetencyFinanceAnalytics: {
		"finance", "financial", "budget", "margin", "analytics", "forecast",
		"cash", "accounting", "metrics", "pricing", "valuation", "audit",
	},
	model.CompetencyTeamCulture: {
		"team", "culture", "hiring", "leadership", "coaching", "retention",
		"people", "morale", "training", "management", "mentoring",
	},
	model.CompetencyProductTechnology: {
		"product", "technology", "software", "engineering", "development",
		"platform", "technical", "design", "roadmap", "architecture", "data",
	},
}

// Lookup returns the archetype for a competency. The second return is false
// for unknown keys.
func Lookup(c model.Competency) (model.Archetype, bool) {
	a, ok := archetypes[c]
	return a, ok
}

// Vocabulary returns the keyword vocabulary for a competency.
func Vocabulary(c model.Competency) []string {
	return competencyVocab[c]
}
