// Package archetype selects the buyer archetype from competency evidence.
package archetype

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/heuristics"
	"github.com/sells-group/advisor-cli/internal/model"
)

// Composite weighting: self-rating and keyword relevance dominate, with
// sentiment, confidence language, and depth as secondary signals.
const (
	ratingWeight     = 0.3
	sentimentWeight  = 0.2
	keywordWeight    = 0.3
	confidenceWeight = 0.1
	depthWeight      = 0.1
)

// Selection is the outcome of scoring a submission's evidence.
type Selection struct {
	Archetype model.Archetype
	Scores    []model.CompetencyScore
}

// Score computes a composite score for each of the five competencies and
// selects the archetype with the highest composite. Equal composites prefer
// the competency with strictly longer evidence; remaining ties resolve to
// canonical competency order.
func Score(evidence map[model.Competency]model.CompetencyEvidence) (*Selection, error) {
	if err := validate(evidence); err != nil {
		return nil, err
	}

	scores := make([]model.CompetencyScore, 0, len(model.Competencies))
	var winner model.CompetencyScore
	var winnerEvidence string

	for _, c := range model.Competencies {
		ev := evidence[c]
		cs := scoreOne(c, ev)
		scores = append(scores, cs)

		if len(scores) == 1 {
			winner, winnerEvidence = cs, ev.Evidence
			continue
		}
		if cs.CompositeScore > winner.CompositeScore ||
			(cs.CompositeScore == winner.CompositeScore && len(ev.Evidence) > len(winnerEvidence)) {
			winner, winnerEvidence = cs, ev.Evidence
		}
	}

	arch, ok := Lookup(winner.Competency)
	if !ok {
		// All five competencies have table entries; reaching this means the
		// table and the canonical list drifted apart.
		return nil, fmt.Errorf("archetype: no table entry for %s", winner.Competency)
	}

	zap.L().Debug("archetype: selected",
		zap.String("competency", string(winner.Competency)),
		zap.Float64("composite", winner.CompositeScore),
	)

	return &Selection{Archetype: arch, Scores: scores}, nil
}

// scoreOne computes the weighted composite for a single competency.
func scoreOne(c model.Competency, ev model.CompetencyEvidence) model.CompetencyScore {
	cs := model.CompetencyScore{
		Competency:      c,
		Rating:          float64(ev.SelfRating),
		SentimentScore:  heuristics.Sentiment(ev.Evidence),
		KeywordScore:    heuristics.KeywordRelevance(ev.Evidence, Vocabulary(c)),
		ConfidenceScore: heuristics.ConfidenceLanguage(ev.Evidence),
		DepthScore:      heuristics.DepthSpecificity(ev.Evidence),
	}
	cs.CompositeScore = ratingWeight*cs.Rating +
		sentimentWeight*cs.SentimentScore +
		keywordWeight*cs.KeywordScore +
		confidenceWeight*cs.ConfidenceScore +
		depthWeight*cs.DepthScore
	return cs
}

// validate enforces the evidence contract: all five competencies present,
// ratings in [1, 5], evidence at least MinEvidenceLength characters.
func validate(evidence map[model.Competency]model.CompetencyEvidence) error {
	var problems []string
	for _, c := range model.Competencies {
		ev, ok := evidence[c]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: evidence missing", c))
			continue
		}
		if ev.SelfRating < 1 || ev.SelfRating > 5 {
			problems = append(problems, fmt.Sprintf("%s: rating %d outside 1-5", c, ev.SelfRating))
		}
		if len(ev.Evidence) < model.MinEvidenceLength {
			problems = append(problems, fmt.Sprintf("%s: evidence %d chars, need %d",
				c, len(ev.Evidence), model.MinEvidenceLength))
		}
	}
	if len(problems) > 0 {
		return model.NewValidationError(problems...)
	}
	return nil
}
