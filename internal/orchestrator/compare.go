package orchestrator

import (
	"fmt"
	"math"
	"sort"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Consensus thresholds over the population standard deviation of overall
// confidence.
const (
	highConsensusStdDev   = 0.10
	mediumConsensusStdDev = 0.20
)

// Compare computes agreement statistics across engine results. At least two
// results are required.
func Compare(results map[string]*model.AnalysisResult) (*model.EngineComparison, error) {
	if len(results) < 2 {
		return nil, &OrchestrationError{Reason: "comparison needs at least two results"}
	}

	engines := make([]string, 0, len(results))
	for id := range results {
		engines = append(engines, id)
	}
	sort.Strings(engines)

	modal, agreement := modalArchetype(results)
	overlap := industryOverlap(results)
	stddev := confidenceStdDev(results)

	cmp := &model.EngineComparison{
		Engines:            engines,
		ModalArchetype:     modal,
		ArchetypeAgreement: agreement,
		IndustryOverlap:    overlap,
		ConfidenceStdDev:   stddev,
		Consensus:          classifyConsensus(stddev),
	}
	cmp.Recommendations = recommendations(cmp)
	return cmp, nil
}

// modalArchetype returns the most frequent archetype competency and the
// fraction of engines that chose it. Frequency ties resolve to the earliest
// competency in canonical order.
func modalArchetype(results map[string]*model.AnalysisResult) (model.Competency, float64) {
	counts := make(map[model.Competency]int)
	for _, r := range results {
		counts[r.Archetype.Competency]++
	}

	var (
		modal model.Competency
		best  int
	)
	for _, c := range model.Competencies {
		if counts[c] > best {
			modal = c
			best = counts[c]
		}
	}
	return modal, float64(best) / float64(len(results))
}

// industryOverlap is the Jaccard ratio of industries named by every engine
// to industries named by any engine.
func industryOverlap(results map[string]*model.AnalysisResult) float64 {
	seenBy := make(map[string]int)
	for _, r := range results {
		for _, m := range r.IndustryMatches {
			seenBy[m.Industry]++
		}
	}
	if len(seenBy) == 0 {
		return 0
	}

	common := 0
	for _, n := range seenBy {
		if n == len(results) {
			common++
		}
	}
	return float64(common) / float64(len(seenBy))
}

// confidenceStdDev is the population standard deviation of each result's
// overall confidence.
func confidenceStdDev(results map[string]*model.AnalysisResult) float64 {
	var sum float64
	for _, r := range results {
		sum += r.Confidence.Overall
	}
	mean := sum / float64(len(results))

	var variance float64
	for _, r := range results {
		d := r.Confidence.Overall - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(results)))
}

func classifyConsensus(stddev float64) model.ConsensusLevel {
	switch {
	case stddev < highConsensusStdDev:
		return model.ConsensusHigh
	case stddev < mediumConsensusStdDev:
		return model.ConsensusMedium
	default:
		return model.ConsensusLow
	}
}

func recommendations(cmp *model.EngineComparison) []string {
	var recs []string

	if cmp.ArchetypeAgreement == 1 {
		recs = append(recs, fmt.Sprintf("All engines agree on the %s archetype; treat it as settled.", cmp.ModalArchetype))
	} else {
		recs = append(recs, fmt.Sprintf("Engines split on the archetype; %s is the most common pick at %.0f%% agreement.",
			cmp.ModalArchetype, cmp.ArchetypeAgreement*100))
	}

	switch {
	case cmp.IndustryOverlap >= 0.5:
		recs = append(recs, "Industry recommendations substantially overlap; start the search in the shared industries.")
	case cmp.IndustryOverlap > 0:
		recs = append(recs, "Industry recommendations only partially overlap; weigh the shared industries first and treat the rest as exploratory.")
	default:
		recs = append(recs, "No industry appears in every result; gather more evidence before narrowing the search.")
	}

	if cmp.Consensus == model.ConsensusLow {
		recs = append(recs, "Confidence varies widely between engines; review the underlying evidence before acting on any single result.")
	}

	return recs
}
