// Package finance derives acquisition price and earnings targets from the
// submitter's capital position and detected industry multiples.
package finance

import (
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/model"
)

const (
	// equityInjectionRate models a 10% SBA-style equity injection: available
	// capital supports a purchase price of ten times itself.
	equityInjectionRate = 0.10

	// debtServiceRate models 15% annual debt service on the loan amount.
	debtServiceRate = 0.15

	// capitalEarningsFloor sets the initial SDE floor at twice capital.
	capitalEarningsFloor = 2.0

	// DefaultMultiple applies when no industry match carries confidence.
	DefaultMultiple = 3.0
)

// industryMultiples maps canonical industry names to typical SDE purchase
// multiples. Unlisted industries fall back to DefaultMultiple.
var industryMultiples = map[string]float64{
	"home services":         2.8,
	"landscaping":           2.5,
	"ecommerce":             3.2,
	"software":              4.5,
	"healthcare":            3.8,
	"logistics":             3.0,
	"construction":          2.7,
	"manufacturing":         3.5,
	"food and beverage":     2.2,
	"professional services": 3.4,
	"fitness and wellness":  2.6,
	"education":             3.1,
}

// MultipleFor returns the SDE multiple for an industry, or DefaultMultiple
// when the industry is unknown.
func MultipleFor(industry string) float64 {
	if m, ok := industryMultiples[industry]; ok {
		return m
	}
	return DefaultMultiple
}

// Compute derives the purchase-price ceiling and SDE target range.
//
// The SDE floor starts at twice capital and is raised to cover the required
// income plus loan debt service. When that floor exceeds the multiple-implied
// SDE ceiling the range is inverted; values are reported as computed with
// RangeInverted set, and presentation is left to the caller.
func Compute(capital, loanAmount, minIncome float64, matches []model.IndustryMatch) model.FinancialParameters {
	maxPrice := capital / equityInjectionRate

	multiple, confidence := weightedMultiple(matches)

	sdeMax := maxPrice / multiple

	sdeMin := capital * capitalEarningsFloor
	requiredSDE := minIncome + loanAmount*debtServiceRate
	if sdeMin < requiredSDE {
		sdeMin = requiredSDE
	}

	params := model.FinancialParameters{
		MaxPurchasePrice:   maxPrice,
		SDEMin:             sdeMin,
		SDEMax:             sdeMax,
		IndustryMultiple:   multiple,
		IndustryConfidence: confidence,
	}

	if sdeMin > sdeMax {
		params.RangeInverted = true
		zap.L().Warn("finance: SDE range inverted",
			zap.Float64("sde_min", sdeMin),
			zap.Float64("sde_max", sdeMax),
			zap.Float64("multiple", multiple),
		)
	}

	return params
}

// weightedMultiple blends per-industry multiples by match confidence.
// Returns DefaultMultiple with zero confidence when the list is empty or all
// confidences are zero.
func weightedMultiple(matches []model.IndustryMatch) (multiple, confidence float64) {
	var weighted, totalConf float64
	for _, m := range matches {
		weighted += MultipleFor(m.Industry) * m.Confidence
		totalConf += m.Confidence
	}
	if totalConf == 0 {
		return DefaultMultiple, 0
	}

	avgConf := totalConf / float64(len(matches))
	return weighted / totalConf, avgConf
}
