// Package heuristics provides pure, deterministic scoring functions over
// free-text evidence. Every function returns a value clamped to [1, 5] and
// has no side effects; the same text always produces the same score.
package heuristics

import (
	"math"
	"strings"
	"unicode"
)

// Sentiment blends two independent lexicon polarity estimates 60/40. Each
// estimate maps a [-1, +1] polarity into [1, 5] via 3 + polarity*2 before
// blending.
func Sentiment(text string) float64 {
	wordScore := normalizePolarity(wordPolarity(text))
	phraseScore := normalizePolarity(phrasePolarity(text))
	return clamp(0.6*wordScore + 0.4*phraseScore)
}

// KeywordRelevance scores how much of the vocabulary the text covers. A
// vocabulary term matches when it and a text token contain each other in
// either direction, case-insensitive.
func KeywordRelevance(text string, vocabulary []string) float64 {
	if len(vocabulary) == 0 {
		return 1.0
	}

	tokens := Tokenize(text)
	matches := 0
	for _, term := range vocabulary {
		lt := strings.ToLower(term)
		for _, tok := range tokens {
			if strings.Contains(tok, lt) || strings.Contains(lt, tok) {
				matches++
				break
			}
		}
	}

	return math.Min(5, 1+float64(matches)/float64(len(vocabulary))*4)
}

// ConfidenceLanguage starts at a 3.0 baseline and shifts per occurrence of
// high-achievement (+0.3), collaborative (+0.1), and tentative (-0.2) terms.
func ConfidenceLanguage(text string) float64 {
	lower := strings.ToLower(text)

	score := 3.0
	for _, term := range highAchievementTerms {
		score += 0.3 * float64(strings.Count(lower, term))
	}
	for _, term := range collaborativeTerms {
		score += 0.1 * float64(strings.Count(lower, term))
	}
	for _, term := range tentativeTerms {
		score -= 0.2 * float64(strings.Count(lower, term))
	}

	return clamp(score)
}

// DepthSpecificity rewards longer sentences (up to 3 points at an average of
// 150+ characters) and concrete markers such as numbers, currency, and
// percentage figures (0.5 each, up to 2 points). Floor is 1.
func DepthSpecificity(text string) float64 {
	depth := math.Min(3, avgSentenceLength(text)/50)
	markers := math.Min(2, float64(countSpecificityMarkers(text))*0.5)
	return math.Max(1, depth+markers)
}

// Tokenize lowercases text and splits it into keyword candidates: runs of
// letters or digits at least 4 characters long.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 4 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// wordPolarity is the primary estimate: net positive/negative word count
// over total hits.
func wordPolarity(text string) float64 {
	var pos, neg int
	for _, tok := range Tokenize(text) {
		if _, ok := positiveWords[tok]; ok {
			pos++
		}
		if _, ok := negativeWords[tok]; ok {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

// phrasePolarity is the secondary estimate over fixed multi-word phrases.
func phrasePolarity(text string) float64 {
	lower := strings.ToLower(text)
	var pos, neg int
	for _, p := range positivePhrases {
		pos += strings.Count(lower, p)
	}
	for _, p := range negativePhrases {
		neg += strings.Count(lower, p)
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

// avgSentenceLength returns the mean character length of sentences split on
// terminal punctuation.
func avgSentenceLength(text string) float64 {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var total, count float64
	for _, s := range sentences {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}
		total += float64(len(trimmed))
		count++
	}
	if count == 0 {
		return 0
	}
	return total / count
}

// countSpecificityMarkers counts numeric runs plus fixed marker terms.
func countSpecificityMarkers(text string) int {
	lower := strings.ToLower(text)

	count := 0
	inDigits := false
	for _, r := range lower {
		if unicode.IsDigit(r) {
			if !inDigits {
				count++
				inDigits = true
			}
		} else {
			inDigits = false
		}
	}

	for _, term := range specificityTerms {
		count += strings.Count(lower, term)
	}
	return count
}

func normalizePolarity(p float64) float64 {
	return clamp(3 + p*2)
}

func clamp(v float64) float64 {
	return math.Min(5, math.Max(1, v))
}
