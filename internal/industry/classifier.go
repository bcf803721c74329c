// Package industry classifies free-text preferences against a static
// three-tier keyword hierarchy per industry.
package industry

import (
	"math"
	"sort"
	"strings"

	"github.com/sells-group/advisor-cli/internal/heuristics"
	"github.com/sells-group/advisor-cli/internal/model"
)

// maxMatches caps the ranked result list.
const maxMatches = 5

// Classify scores every industry against candidate tokens extracted from
// freeText. A tier term scores its weight when it and any token contain each
// other, case-insensitive. Zero-score industries are dropped; results are
// sorted by score descending (ties alphabetical) and capped at five. When
// nothing matches, the fixed low-confidence service fallback is returned.
func Classify(freeText string) []model.IndustryMatch {
	tokens := heuristics.Tokenize(freeText)

	var matches []model.IndustryMatch
	for name, tiers := range industryTerms {
		score := tierScore(tiers.Primary, tokens)*primaryWeight +
			tierScore(tiers.Secondary, tokens)*secondaryWeight +
			tierScore(tiers.Context, tokens)*contextWeight
		if score == 0 {
			continue
		}
		matches = append(matches, model.IndustryMatch{
			Industry:   name,
			Score:      score,
			Confidence: math.Min(1.0, score/10),
		})
	}

	if len(matches) == 0 {
		return []model.IndustryMatch{{
			Industry:   FallbackIndustry,
			Score:      fallbackConfidence * 10,
			Confidence: fallbackConfidence,
		}}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Industry < matches[j].Industry
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// tierScore counts tier terms matched by any candidate token.
func tierScore(terms []string, tokens []string) float64 {
	var hits float64
	for _, term := range terms {
		lt := strings.ToLower(term)
		for _, tok := range tokens {
			if strings.Contains(tok, lt) || strings.Contains(lt, tok) {
				hits++
				break
			}
		}
	}
	return hits
}

// Names returns all classifiable industry names, sorted. Used by callers
// that render pickers or validate config overrides.
func Names() []string {
	names := make([]string, 0, len(industryTerms))
	for name := range industryTerms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
