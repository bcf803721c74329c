// Package report assembles the acquisition thesis narrative and the buybox
// criteria table from scoring outputs. Pure templating: no decision logic
// beyond string interpolation.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/advisor-cli/internal/model"
)

var moneyPrint = message.NewPrinter(language.English)

// titleCase title-cases a phrase. Casers are stateful, so one is built per
// call rather than shared.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Criterion labels, in the fixed buybox row order.
const (
	RowIndustries    = "Industries"
	RowBusinessModel = "Business Model"
	RowSizeSDE       = "Size/SDE"
	RowProfitMargin  = "Profit Margin"
	RowGeography     = "Geography"
	RowOwnerRole     = "Owner Role"
	RowTeamStructure = "Team Structure"
	RowYourLeverage  = "Your Leverage"
	RowRedFlags      = "Red Flags"
)

// Compose builds the narrative thesis and the ordered buybox rows.
func Compose(arch model.Archetype, matches []model.IndustryMatch, fin model.FinancialParameters, sub *model.Submission) (string, []model.BuyboxRow) {
	return narrative(arch, matches, fin), buybox(arch, matches, fin, sub)
}

func narrative(arch model.Archetype, matches []model.IndustryMatch, fin model.FinancialParameters) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your buyer archetype is %s. %s\n\n", arch.Title, arch.LeverageThesis)

	fmt.Fprintf(&b,
		"Based on your stated interests, your search should start in %s. "+
			"At a blended industry multiple of %.1fx, your available capital supports "+
			"a purchase price up to %s, which translates to businesses earning "+
			"between %s and %s in seller's discretionary earnings.\n",
		industryList(matches),
		fin.IndustryMultiple,
		money(fin.MaxPurchasePrice),
		money(fin.SDEMin),
		money(fin.SDEMax),
	)

	if fin.RangeInverted {
		b.WriteString("\nNote: your income requirement exceeds what your capital can " +
			"buy at current multiples. Expect to raise more capital, lower the income " +
			"target, or search in lower-multiple industries.\n")
	}

	return b.String()
}

func buybox(arch model.Archetype, matches []model.IndustryMatch, fin model.FinancialParameters, sub *model.Submission) []model.BuyboxRow {
	redFlags := "Declining revenue 3+ years; customer concentration over 30%; unresolved litigation"
	if fin.RangeInverted {
		redFlags += "; income target exceeds affordable SDE range"
	}

	return []model.BuyboxRow{
		{
			Criterion: RowIndustries,
			Target:    industryList(matches),
			Rationale: "Strongest keyword alignment with your stated interests and experience",
		},
		{
			Criterion: RowBusinessModel,
			Target:    businessModelTarget(sub.RiskTolerance),
			Rationale: "Matches your stated risk tolerance",
		},
		{
			Criterion: RowSizeSDE,
			Target:    fmt.Sprintf("%s to %s SDE", money(fin.SDEMin), money(fin.SDEMax)),
			Rationale: fmt.Sprintf("Capital supports up to %s at a %.1fx multiple",
				money(fin.MaxPurchasePrice), fin.IndustryMultiple),
		},
		{
			Criterion: RowProfitMargin,
			Target:    "15%+ net margin, stable or improving over 3 years",
			Rationale: "Thin-margin businesses leave no room for transition mistakes",
		},
		{
			Criterion: RowGeography,
			Target:    geographyTarget(sub.Location),
			Rationale: "Aligned with your stated location preference",
		},
		{
			Criterion: RowOwnerRole,
			Target:    ownerRoleTarget(sub.TimeCommitment),
			Rationale: "Matches the time commitment you can sustain",
		},
		{
			Criterion: RowTeamStructure,
			Target:    "Second-layer management or promotable senior staff in place",
			Rationale: "Reduces key-person risk through the ownership transition",
		},
		{
			Criterion: RowYourLeverage,
			Target:    arch.Title,
			Rationale: arch.LeverageThesis,
		},
		{
			Criterion: RowRedFlags,
			Target:    "Walk away",
			Rationale: redFlags,
		},
	}
}

// industryList renders ranked industry names title-cased, comma separated.
func industryList(matches []model.IndustryMatch) string {
	if len(matches) == 0 {
		return "General Service Businesses"
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, titleCase(m.Industry))
	}
	return strings.Join(names, ", ")
}

func businessModelTarget(risk model.RiskTolerance) string {
	switch risk {
	case model.RiskConservative:
		return "Recurring revenue, contracted customers, 10+ years operating history"
	case model.RiskAggressive:
		return "Repeat revenue acceptable; turnaround and carve-out situations in scope"
	default:
		return "Recurring or reliable repeat revenue with an established customer base"
	}
}

func geographyTarget(location string) string {
	if strings.TrimSpace(location) == "" {
		return "Flexible; relocation or remote oversight acceptable"
	}
	return titleCase(location) + " and surrounding metro"
}

func ownerRoleTarget(tc model.TimeCommitment) string {
	switch tc {
	case model.TimeAbsentee:
		return "Manager-run; owner works under 10 hours per week"
	case model.TimePartTime:
		return "Owner-supervised; operating manager handles day-to-day"
	default:
		return "Owner-operated; full-time role from day one"
	}
}

// money formats a dollar amount with thousands separators and no cents.
func money(v float64) string {
	return moneyPrint.Sprintf("$%.0f", v)
}
