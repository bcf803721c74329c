package model

import "time"

// CompetencyScore is the per-competency scoring breakdown. Derived fresh on
// every request, never stored independently.
type CompetencyScore struct {
	Competency      Competency `json:"competency"`
	Rating          float64    `json:"rating"`
	SentimentScore  float64    `json:"sentiment_score"`
	KeywordScore    float64    `json:"keyword_score"`
	ConfidenceScore float64    `json:"confidence_score"`
	DepthScore      float64    `json:"depth_score"`
	CompositeScore  float64    `json:"composite_score"`
}

// Archetype is the competency-derived persona assigned to a submission.
type Archetype struct {
	Competency     Competency `json:"competency"`
	Title          string     `json:"title"`
	LeverageThesis string     `json:"leverage_thesis"`
}

// IndustryMatch is one industry candidate ranked by keyword relevance.
type IndustryMatch struct {
	Industry   string  `json:"industry"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// FinancialParameters bound the acquisition search by price and earnings.
type FinancialParameters struct {
	MaxPurchasePrice   float64 `json:"max_purchase_price"`
	SDEMin             float64 `json:"sde_min"`
	SDEMax             float64 `json:"sde_max"`
	IndustryMultiple   float64 `json:"industry_multiple"`
	IndustryConfidence float64 `json:"industry_confidence"`
	// RangeInverted is set when the income/debt-service floor pushes SDEMin
	// above SDEMax. Values are reported as computed; callers decide how to
	// present the conflict.
	RangeInverted bool `json:"range_inverted,omitempty"`
}

// ConfidenceScores summarizes how much trust to place in each part of an
// analysis. All values are in [0, 1].
type ConfidenceScores struct {
	Overall     float64 `json:"overall"`
	Archetype   float64 `json:"archetype"`
	Industry    float64 `json:"industry"`
	DataQuality float64 `json:"data_quality"`
}

// BuyboxRow is one screening criterion in the acquisition buybox table.
type BuyboxRow struct {
	Criterion string `json:"criterion"`
	Target    string `json:"target"`
	Rationale string `json:"rationale"`
}

// AnalysisResult is the complete output of one engine for one submission.
type AnalysisResult struct {
	Archetype        Archetype           `json:"archetype"`
	CompetencyScores []CompetencyScore   `json:"competency_scores,omitempty"`
	IndustryMatches  []IndustryMatch     `json:"industry_matches"`
	Financial        FinancialParameters `json:"financial"`
	Confidence       ConfidenceScores    `json:"confidence"`
	NarrativeThesis  string              `json:"narrative_thesis"`
	Buybox           []BuyboxRow         `json:"buybox"`
	Engine           string              `json:"engine"`
	Degraded         bool                `json:"degraded,omitempty"`
	GeneratedAt      time.Time           `json:"generated_at"`
}

// EngineDescriptor describes one registered engine for callers that render
// an engine picker.
type EngineDescriptor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Remote    bool   `json:"remote"`
	Available bool   `json:"available"`
}

// ConsensusLevel classifies cross-engine confidence variance.
type ConsensusLevel string

const (
	ConsensusHigh   ConsensusLevel = "high"
	ConsensusMedium ConsensusLevel = "medium"
	ConsensusLow    ConsensusLevel = "low"
)

// EngineComparison reports agreement statistics across two or more engine
// results. Ephemeral, computed on demand.
type EngineComparison struct {
	Engines            []string       `json:"engines"`
	ModalArchetype     Competency     `json:"modal_archetype"`
	ArchetypeAgreement float64        `json:"archetype_agreement"`
	IndustryOverlap    float64        `json:"industry_overlap"`
	ConfidenceStdDev   float64        `json:"confidence_stddev"`
	Consensus          ConsensusLevel `json:"consensus"`
	Recommendations    []string       `json:"recommendations"`
}
