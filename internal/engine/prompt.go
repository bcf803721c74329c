package engine

import (
	"fmt"
	"strings"

	"github.com/sells-group/advisor-cli/internal/model"
)

// systemPrompt instructs remote models to answer in the sectioned format
// that ParseCompletion expects.
const systemPrompt = `You are an acquisition advisor helping a prospective buyer define their search strategy. Analyze the buyer's self-assessment and respond in EXACTLY this format, with these section markers on their own lines:

ARCHETYPE: <one of: sales_marketing, operations_systems, finance_analytics, team_culture, product_technology>
CONFIDENCE: overall=<0.0-1.0> archetype=<0.0-1.0> industry=<0.0-1.0> data_quality=<0.0-1.0>
INDUSTRIES: <industry name> (<0.0-1.0>), <industry name> (<0.0-1.0>), ... up to five entries
THESIS:
<two or three paragraphs of acquisition thesis prose>
BUYBOX:
| Criterion | Target | Rationale |
|---|---|---|
| Industries | ... | ... |
| Business Model | ... | ... |
| Size/SDE | ... | ... |
| Profit Margin | ... | ... |
| Geography | ... | ... |
| Owner Role | ... | ... |
| Team Structure | ... | ... |
| Your Leverage | ... | ... |
| Red Flags | ... | ... |

Do not add sections, preambles, or commentary outside this structure.`

// BuildPrompt renders the deterministic user prompt for a validated
// submission. The same submission always produces the same prompt.
func BuildPrompt(sub *model.Submission) string {
	var b strings.Builder

	b.WriteString("Buyer self-assessment follows.\n\n")

	b.WriteString("## Competencies (self-rating 1-5 with evidence)\n")
	for _, c := range model.Competencies {
		ev := sub.Evidence[c]
		fmt.Fprintf(&b, "\n### %s — rated %d/5\n%s\n", c, ev.SelfRating, ev.Evidence)
	}

	b.WriteString("\n## Interests and observations\n")
	fmt.Fprintf(&b, "Interests: %s\n", orNone(sub.Interests))
	fmt.Fprintf(&b, "Problems seen in industry: %s\n", orNone(sub.ProblemsSeen))
	fmt.Fprintf(&b, "Books and media: %s\n", orNone(sub.BooksAndMedia))

	b.WriteString("\n## Financial position\n")
	fmt.Fprintf(&b, "Capital available: $%.0f\n", sub.CapitalAvailable)
	fmt.Fprintf(&b, "Loan amount: $%.0f\n", sub.LoanAmount)
	fmt.Fprintf(&b, "Minimum annual income required: $%.0f\n", sub.MinAnnualIncome)

	b.WriteString("\n## Preferences\n")
	fmt.Fprintf(&b, "Risk tolerance: %s\n", orNone(string(sub.RiskTolerance)))
	fmt.Fprintf(&b, "Time commitment: %s\n", orNone(string(sub.TimeCommitment)))
	fmt.Fprintf(&b, "Location: %s\n", orNone(sub.Location))

	return b.String()
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not provided)"
	}
	return s
}
