package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/report"
)

// parsedCompletion is the structured form recovered from a remote model's
// free-text response.
type parsedCompletion struct {
	Archetype  model.Competency
	Confidence model.ConfidenceScores
	Industries []model.IndustryMatch
	Thesis     string
	Buybox     []model.BuyboxRow
}

var (
	confPairRe = regexp.MustCompile(`(\w+)=([0-9.]+)`)
	industryRe = regexp.MustCompile(`^(.*?)\s*\(([0-9.]+)\)$`)
)

// ParseCompletion recovers the structured analysis from a sectioned
// completion. Line-scanning extraction is best-effort by design: any missing
// or malformed required section returns an error, and callers substitute the
// documented low-confidence fallback instead of propagating.
func ParseCompletion(text string) (*parsedCompletion, error) {
	var (
		parsed      parsedCompletion
		thesisLines []string
		buyboxLines []string
		section     string
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "ARCHETYPE:"):
			section = ""
			parsed.Archetype = parseArchetypeKey(strings.TrimPrefix(line, "ARCHETYPE:"))
		case strings.HasPrefix(line, "CONFIDENCE:"):
			section = ""
			parsed.Confidence = parseConfidence(strings.TrimPrefix(line, "CONFIDENCE:"))
		case strings.HasPrefix(line, "INDUSTRIES:"):
			section = ""
			parsed.Industries = parseIndustries(strings.TrimPrefix(line, "INDUSTRIES:"))
		case line == "THESIS:":
			section = "thesis"
		case line == "BUYBOX:":
			section = "buybox"
		case section == "thesis":
			thesisLines = append(thesisLines, raw)
		case section == "buybox":
			buyboxLines = append(buyboxLines, raw)
		}
	}

	parsed.Thesis = strings.TrimSpace(strings.Join(thesisLines, "\n"))

	if parsed.Archetype == "" {
		return nil, eris.New("parse: archetype section missing or unrecognized")
	}
	if parsed.Thesis == "" {
		return nil, eris.New("parse: thesis section missing")
	}
	if len(parsed.Industries) == 0 {
		return nil, eris.New("parse: industries section missing")
	}

	rows, err := report.ParseBuybox(strings.Join(buyboxLines, "\n"))
	if err != nil {
		return nil, eris.Wrap(err, "parse: buybox section")
	}
	parsed.Buybox = rows

	return &parsed, nil
}

// parseArchetypeKey normalizes the archetype value and checks it against the
// competency set. Returns "" for unrecognized values.
func parseArchetypeKey(v string) model.Competency {
	key := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(v)), " ", "_")
	for _, c := range model.Competencies {
		if key == string(c) {
			return c
		}
	}
	return ""
}

// parseConfidence reads k=v pairs; absent keys default to a conservative
// 0.5.
func parseConfidence(v string) model.ConfidenceScores {
	scores := model.ConfidenceScores{
		Overall:     0.5,
		Archetype:   0.5,
		Industry:    0.5,
		DataQuality: 0.5,
	}
	for _, m := range confPairRe.FindAllStringSubmatch(v, -1) {
		val, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		val = clamp01(val)
		switch m[1] {
		case "overall":
			scores.Overall = val
		case "archetype":
			scores.Archetype = val
		case "industry":
			scores.Industry = val
		case "data_quality":
			scores.DataQuality = val
		}
	}
	return scores
}

// parseIndustries reads "name (confidence)" entries, comma separated,
// capped at five.
func parseIndustries(v string) []model.IndustryMatch {
	var matches []model.IndustryMatch
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		m := industryRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		conf, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		conf = clamp01(conf)

		name := strings.ToLower(strings.TrimSpace(m[1]))
		if name == "" {
			continue
		}
		matches = append(matches, model.IndustryMatch{
			Industry:   name,
			Score:      conf * 10,
			Confidence: conf,
		})
		if len(matches) == 5 {
			break
		}
	}
	return matches
}
