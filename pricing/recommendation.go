package pricing

import (
	"math"

	"github.com/google/uuid"

	"smartquote/models"
)

const (
	pmFeeShare       = 0.10
	pmFeeDescription = "Project Management & Coordination"
)

// Normalize turns a validated analysis into a Recommendation.
//
//   - each cost entry becomes a line item (hours × rate, or 1 × total when
//     the entry has no hours, as in feature-based pricing)
//   - each entry with hours becomes a team member with an inferred role and
//     level; feature-based replies get a team from the local estimate
//   - confidence from the provider is clamped to 0..100, and the local
//     heuristic is used when it is missing
func Normalize(a Analysis, input models.ProjectInput, market Market, source models.RecommendationSource) models.Recommendation {
	breakdown := make([]models.LineItem, 0, len(a.CostBreakdown)+1)
	for _, e := range a.CostBreakdown {
		breakdown = append(breakdown, entryLineItem(e))
	}

	team := teamFromEntries(a.CostBreakdown)
	if len(team) == 0 {
		team = teamFromEntries(FallbackAnalysis(input, market).CostBreakdown)
	}

	margin := a.ProfitMarginRecommendation
	if margin <= 0 {
		margin = ProfitMarginFor(input.ProjectSize)
	}

	confidence := math.Max(0, math.Min(100, a.Confidence))
	if confidence == 0 {
		confidence = Confidence(input, len(team))
	}

	return models.Recommendation{
		TotalPrice:      a.RecommendedPrice,
		Currency:        market.Currency,
		Breakdown:       breakdown,
		ProfitMargin:    margin,
		Reasoning:       a.Reasoning,
		MarketInsights:  a.MarketInsights,
		TeamSuggestions: team,
		Confidence:      confidence,
		Source:          source,
	}
}

// AppendProjectManagement adds a project management line worth 10% of the
// recommended price for large and enterprise projects, unless a breakdown
// entry already covers management.
func AppendProjectManagement(rec models.Recommendation, size models.ProjectSize) models.Recommendation {
	if size != models.SizeLarge && size != models.SizeEnterprise {
		return rec
	}
	for _, li := range rec.Breakdown {
		if InferRole(li.Description) == models.RoleManager {
			return rec
		}
	}

	breakdown := make([]models.LineItem, len(rec.Breakdown), len(rec.Breakdown)+1)
	copy(breakdown, rec.Breakdown)
	rec.Breakdown = append(breakdown, models.NewLineItem(pmFeeDescription, 1, math.Round(rec.TotalPrice*pmFeeShare)))
	return rec
}

func entryLineItem(e CostEntry) models.LineItem {
	if e.Hours > 0 && e.Rate > 0 {
		return models.NewLineItem(e.Role, e.Hours, e.Rate)
	}
	return models.NewLineItem(e.Role, 1, e.Total)
}

func teamFromEntries(entries []CostEntry) []models.TeamMember {
	var team []models.TeamMember
	for _, e := range entries {
		if e.Hours <= 0 {
			continue
		}
		team = append(team, models.TeamMember{
			ID:             uuid.NewString(),
			Role:           InferRole(e.Role),
			EstimatedHours: e.Hours,
			HourlyRate:     e.Rate,
			Level:          InferLevel(e.Rate),
		})
	}
	return RebalanceContributions(team)
}

// RebalanceContributions recomputes each member's contribution as its share
// of total hours, rounded to one decimal. It returns a new slice.
func RebalanceContributions(members []models.TeamMember) []models.TeamMember {
	if len(members) == 0 {
		return nil
	}

	var totalHours float64
	for _, m := range members {
		totalHours += m.EstimatedHours
	}

	out := make([]models.TeamMember, len(members))
	copy(out, members)
	for i := range out {
		if totalHours > 0 {
			out[i].ContributionPercentage = math.Round(out[i].EstimatedHours/totalHours*1000) / 10
		} else {
			out[i].ContributionPercentage = 0
		}
	}
	return out
}
