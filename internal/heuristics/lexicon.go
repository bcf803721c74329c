package heuristics

// Fixed lexicons backing the text heuristics. Scoring must be reproducible
// byte-for-byte across runs, so these tables are compiled in rather than
// loaded from config.

// positiveWords and negativeWords back the primary polarity estimate.
var positiveWords = map[string]struct{}{
	"achieved": {}, "built": {}, "created": {}, "delivered": {}, "doubled": {},
	"earned": {}, "effective": {}, "excellent": {}, "exceeded": {}, "expanded": {},
	"grew": {}, "growth": {}, "improved": {}, "increased": {}, "launched": {},
	"led": {}, "managed": {}, "optimized": {}, "outperformed": {}, "profitable": {},
	"promoted": {}, "scaled": {}, "strong": {}, "succeeded": {}, "success": {},
	"successful": {}, "thrived": {}, "tripled": {}, "winning": {}, "won": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "declined": {}, "difficult": {}, "failed": {}, "failure": {},
	"lacking": {}, "lost": {}, "missed": {}, "poor": {}, "problem": {},
	"shrank": {}, "struggle": {}, "struggled": {}, "terrible": {}, "unable": {},
	"underperformed": {}, "weak": {}, "worried": {}, "worst": {},
}

// positivePhrases and negativePhrases back the secondary polarity estimate,
// which catches multi-word constructions the word lexicon misses.
var positivePhrases = []string{
	"ahead of plan", "beat the target", "best in class", "bottom line improved",
	"exceeded expectations", "grew revenue", "hit our numbers", "record year",
	"top performer", "turned around", "under budget",
}

var negativePhrases = []string{
	"behind plan", "below expectations", "fell short", "lost money",
	"missed the target", "over budget", "ran out of", "went wrong",
}

// highAchievementTerms raise the confidence-language score by 0.3 per
// occurrence.
var highAchievementTerms = []string{
	"accomplished", "achieved", "delivered", "drove", "exceeded", "executed",
	"led", "owned", "pioneered", "spearheaded", "transformed", "won",
}

// collaborativeTerms raise the confidence-language score by 0.1 per
// occurrence.
var collaborativeTerms = []string{
	"coached", "collaborated", "facilitated", "mentored", "partnered",
	"supported", "teamed", "together", "we ",
}

// tentativeTerms lower the confidence-language score by 0.2 per occurrence.
var tentativeTerms = []string{
	"aspire", "attempt", "hope to", "maybe", "might", "perhaps", "possibly",
	"someday", "tried to", "try to", "want to", "wish", "would like",
}

// specificityTerms count as depth markers alongside numerals.
var specificityTerms = []string{
	"%", "$", "for example", "for instance", "kpi", "per month", "per week",
	"per year", "roi", "specifically",
}
