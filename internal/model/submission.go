package model

// Competency identifies one of the five self-assessed business competencies.
type Competency string

const (
	CompetencySalesMarketing    Competency = "sales_marketing"
	CompetencyOperationsSystems Competency = "operations_systems"
	CompetencyFinanceAnalytics  Competency = "finance_analytics"
	CompetencyTeamCulture       Competency = "team_culture"
	CompetencyProductTechnology Competency = "product_technology"
)

// Competencies lists all competencies in canonical order. Tie-breaks during
// archetype selection resolve to the earliest entry in this order.
var Competencies = []Competency{
	CompetencySalesMarketing,
	CompetencyOperationsSystems,
	CompetencyFinanceAnalytics,
	CompetencyTeamCulture,
	CompetencyProductTechnology,
}

// MinEvidenceLength is the minimum accepted length for competency evidence.
const MinEvidenceLength = 200

// CompetencyEvidence is one competency's self-rating plus supporting
// free text. Immutable once submitted.
type CompetencyEvidence struct {
	Competency Competency `json:"competency" yaml:"competency"`
	SelfRating int        `json:"self_rating" yaml:"self_rating"`
	Evidence   string     `json:"evidence" yaml:"evidence"`
}

// RiskTolerance is the submitter's stated appetite for acquisition risk.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// TimeCommitment is how many hours per week the submitter can dedicate.
type TimeCommitment string

const (
	TimePartTime TimeCommitment = "part_time"
	TimeFullTime TimeCommitment = "full_time"
	TimeAbsentee TimeCommitment = "absentee"
)

// Submission is a single intake form submission: five competency evidence
// blocks, free-text preference fields, and financial capacity figures.
type Submission struct {
	Evidence map[Competency]CompetencyEvidence `json:"evidence" yaml:"evidence"`

	// Free-text preference fields mined for industry signals.
	Interests     string `json:"interests" yaml:"interests"`
	ProblemsSeen  string `json:"problems_seen" yaml:"problems_seen"`
	BooksAndMedia string `json:"books_and_media" yaml:"books_and_media"`

	// Financial capacity.
	CapitalAvailable float64 `json:"capital_available" yaml:"capital_available"`
	LoanAmount       float64 `json:"loan_amount" yaml:"loan_amount"`
	MinAnnualIncome  float64 `json:"min_annual_income" yaml:"min_annual_income"`

	// Search preferences.
	RiskTolerance  RiskTolerance  `json:"risk_tolerance" yaml:"risk_tolerance"`
	TimeCommitment TimeCommitment `json:"time_commitment" yaml:"time_commitment"`
	Location       string         `json:"location" yaml:"location"`
}

// FreeText joins the submission's free-text preference fields for
// industry classification.
func (s *Submission) FreeText() string {
	out := s.Interests
	if s.ProblemsSeen != "" {
		out += " " + s.ProblemsSeen
	}
	if s.BooksAndMedia != "" {
		out += " " + s.BooksAndMedia
	}
	return out
}
