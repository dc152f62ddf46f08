package pricing

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"smartquote/models"
)

const hoursPerWeek = 40

var complexityMultipliers = map[models.Complexity]float64{
	models.ComplexityLow:    0.8,
	models.ComplexityMedium: 1.0,
	models.ComplexityHigh:   1.3,
}

var sizeMultipliers = map[models.ProjectSize]float64{
	models.SizeSmall:      0.9,
	models.SizeMedium:     1.0,
	models.SizeLarge:      1.15,
	models.SizeEnterprise: 1.35,
}

var clientAdjustments = map[models.ClientCategory]float64{
	models.ClientIndividual:    0.85,
	models.ClientSmallBusiness: 1.0,
	models.ClientEnterprise:    1.25,
	models.ClientNonProfit:     0.75,
}

// profitMargins are percentages by project size.
var profitMargins = map[models.ProjectSize]float64{
	models.SizeSmall:      35,
	models.SizeMedium:     40,
	models.SizeLarge:      40,
	models.SizeEnterprise: 45,
}

// multiplier reads m[k], treating unknown keys as neutral.
func multiplier[K comparable](m map[K]float64, k K) float64 {
	if v, ok := m[k]; ok {
		return v
	}
	return 1.0
}

// ProfitMarginFor returns the default profit margin percentage for size.
func ProfitMarginFor(size models.ProjectSize) float64 {
	if v, ok := profitMargins[size]; ok {
		return v
	}
	return profitMargins[models.SizeSmall]
}

// HoursPerRole spreads 40h/week × duration × team size evenly over the
// requested roles, rounded to the nearest hour.
func HoursPerRole(input models.ProjectInput) float64 {
	if len(input.Roles) == 0 {
		return 0
	}
	total := float64(hoursPerWeek * input.EstimatedDuration * input.TeamSize)
	return math.Round(total / float64(len(input.Roles)))
}

// AdjustedRate applies the complexity, client and size multipliers to the
// market base rate for role and rounds to a whole currency unit.
func AdjustedRate(input models.ProjectInput, market Market, role models.RoleType) float64 {
	return math.Round(market.BaseRate(role) *
		multiplier(complexityMultipliers, input.Complexity) *
		multiplier(clientAdjustments, input.ClientCategory) *
		multiplier(sizeMultipliers, input.ProjectSize))
}

// FallbackAnalysis computes the local estimate. It has no failure mode.
func FallbackAnalysis(input models.ProjectInput, market Market) Analysis {
	hours := HoursPerRole(input)
	justification := fmt.Sprintf("Based on %s complexity, %s client type, and %s project scope. %s market rate (%s) adjusted for current demand.",
		input.Complexity, input.ClientCategory, input.ProjectSize, titleCase(strings.ToLower(market.Region)), market.Currency)

	var subtotal float64
	breakdown := make([]CostEntry, 0, len(input.Roles))
	for _, role := range input.Roles {
		rate := AdjustedRate(input, market, role)
		total := rate * hours
		subtotal += total
		breakdown = append(breakdown, CostEntry{
			Role:          titleCase(string(role)),
			Hours:         hours,
			Rate:          rate,
			Total:         total,
			Justification: justification,
		})
	}

	margin := ProfitMarginFor(input.ProjectSize)

	return Analysis{
		RecommendedPrice:           math.Round(subtotal * (1 + margin/100)),
		Reasoning:                  fallbackReasoning(input, margin),
		CostBreakdown:              breakdown,
		MarketInsights:             "Market insights need an AI provider. Configure one in settings for competitive benchmarking and current trends.",
		ProfitMarginRecommendation: margin,
	}
}

func fallbackReasoning(input models.ProjectInput, margin float64) string {
	lines := []string{
		"This pricing is based on algorithmic analysis. The calculation considers:",
		fmt.Sprintf("• %s complexity project", strings.ToUpper(string(input.Complexity))),
		fmt.Sprintf("• %s client with typical budget expectations", strings.ToUpper(strings.ReplaceAll(string(input.ClientCategory), "-", " "))),
		fmt.Sprintf("• %s project scope affecting resource allocation", strings.ToUpper(string(input.ProjectSize))),
		fmt.Sprintf("• %d weeks duration with team of %d", input.EstimatedDuration, input.TeamSize),
		fmt.Sprintf("• Market-competitive rates for %s", joinRoles(input.Roles)),
		fmt.Sprintf("• %.0f%% profit margin for sustainability", margin),
	}
	return strings.Join(lines, "\n")
}

// Confidence scores how much input detail supports an estimate: base 70,
// +10 for a description over 50 characters, +5 for two or more roles, +5 for
// a positive duration, +10 when a team was suggested; capped at 95.
func Confidence(input models.ProjectInput, teamSize int) float64 {
	c := 70.0
	if utf8.RuneCountInString(input.Description) > 50 {
		c += 10
	}
	if len(input.Roles) >= 2 {
		c += 5
	}
	if input.EstimatedDuration > 0 {
		c += 5
	}
	if teamSize > 0 {
		c += 10
	}
	return math.Min(c, 95)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
