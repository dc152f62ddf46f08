package pricing

import (
	"fmt"
	"strings"

	"smartquote/models"
)

// SystemPrompt is sent as the system message on every provider call.
const SystemPrompt = "You are an expert pricing consultant. Always respond in valid JSON format."

// BuildPrompt renders the user message for input. The market's rate table is
// embedded as guidance only; nothing in it is computed locally.
func BuildPrompt(input models.ProjectInput, market Market) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert pricing consultant for the %s market. Analyze this project and provide detailed pricing recommendations in %s (%s).\n\n",
		market.Region, market.Currency, market.Symbol)

	roles := joinRoles(input.Roles)

	b.WriteString("PROJECT DETAILS:\n")
	fmt.Fprintf(&b, "- Client Category: %s (affects budget expectations)\n", input.ClientCategory)
	fmt.Fprintf(&b, "- Project Size: %s (affects scope and team size)\n", input.ProjectSize)
	fmt.Fprintf(&b, "- Complexity Level: %s (VERY IMPORTANT - affects rates and hours!)\n", input.Complexity)
	fmt.Fprintf(&b, "- Project Duration: %d weeks (affects total hours)\n", input.EstimatedDuration)
	fmt.Fprintf(&b, "- Team Size: %d people\n", input.TeamSize)
	fmt.Fprintf(&b, "- Required Roles: %s\n", roles)
	if d := strings.TrimSpace(input.Description); d != "" {
		fmt.Fprintf(&b, "- Project Description: %s\n", d)
	}
	b.WriteString("\n")

	if input.IsFeatureBased() {
		writeFeatureSection(&b, input, market)
	} else {
		writeHourlySection(&b, input, market, roles)
	}

	writeResponseSchema(&b, input, market)
	return b.String()
}

func writeHourlySection(b *strings.Builder, input models.ProjectInput, market Market, roles string) {
	fmt.Fprintf(b, "%s MARKET RATES (in %s per hour):\n%s\n\n", market.Region, market.Currency, market.RateGuidance)

	fmt.Fprintf(b, "COMPLEXITY ADJUSTMENTS - ACTUALLY USE THE COMPLEXITY=%q:\n", input.Complexity)
	b.WriteString("- low: Use LOWER end rates, fewer hours per week (20-30 hrs/week)\n")
	b.WriteString("- medium: Use MID-RANGE rates, moderate hours (30-40 hrs/week)\n")
	b.WriteString("- high: Use HIGHER end rates, more hours (40-50 hrs/week)\n\n")

	fmt.Fprintf(b, "PROJECT SIZE=%q ADJUSTMENTS:\n", input.ProjectSize)
	b.WriteString("- small: Minimal team (1-2 people), focused scope, fewer total hours\n")
	b.WriteString("- medium: Balanced team (3-5 people), moderate scope, standard hours\n")
	b.WriteString("- large: Full team (5-8 people), comprehensive scope, many hours\n")
	b.WriteString("- enterprise: Large team (8+ people), extensive scope, maximum hours\n\n")

	fmt.Fprintf(b, "DURATION: %d weeks\n", input.EstimatedDuration)
	fmt.Fprintf(b, "Calculate total hours as: (hours per week based on complexity) × %d weeks\n\n", input.EstimatedDuration)

	b.WriteString("REQUIREMENTS:\n")
	fmt.Fprintf(b, "1. All prices MUST be in %s\n", market.Currency)
	b.WriteString("2. ACTUALLY adjust rates based on complexity level\n")
	b.WriteString("3. ACTUALLY adjust hours based on project size and duration\n")
	fmt.Fprintf(b, "4. Provide breakdown for EACH role in: %s\n", roles)
	fmt.Fprintf(b, "5. Profit margin: %s\n\n", market.MarginGuidance)
}

func writeFeatureSection(b *strings.Builder, input models.ProjectInput, market Market) {
	b.WriteString("PRICING MODEL: FEATURE-BASED (price the value of each feature, not hours)\n")
	fmt.Fprintf(b, "Total features: %d\n", len(input.Features))
	for i, f := range input.Features {
		fmt.Fprintf(b, "%d. %s\n", i+1, f)
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "%s FEATURE PRICING GUIDE (in %s):\n%s\n\n", market.Region, market.Currency, market.FeatureGuidance)

	fmt.Fprintf(b, "COMPLEXITY=%q:\n", input.Complexity)
	b.WriteString("- low: Use SIMPLE feature rates\n")
	b.WriteString("- medium: Use MEDIUM feature rates\n")
	b.WriteString("- high: Use COMPLEX feature rates\n\n")

	b.WriteString("INSTRUCTIONS:\n")
	b.WriteString("1. Analyze EACH feature mentioned\n")
	b.WriteString("2. Price each feature individually based on market value\n")
	b.WriteString("3. Consider feature complexity, not just hours\n")
	b.WriteString("4. Provide reasoning for each feature's price\n")
	b.WriteString("5. Total = sum of all feature prices\n\n")
}

func writeResponseSchema(b *strings.Builder, input models.ProjectInput, market Market) {
	role, hours, rate, total, why, reasoning := "role name (e.g., developer)",
		fmt.Sprintf("based on %d weeks", input.EstimatedDuration),
		market.Currency+"/hr", "hours × rate", "why this rate/hours",
		fmt.Sprintf("how you used complexity=%s, size=%s, duration=%d", input.Complexity, input.ProjectSize, input.EstimatedDuration)
	if input.IsFeatureBased() {
		role, hours, rate, total, why, reasoning = "feature name (e.g., User Authentication)",
			"0 for feature-based", "price per feature in "+market.Currency,
			"feature price in "+market.Currency, "why this feature costs this much",
			"how you priced each feature"
	}

	b.WriteString("Respond ONLY with valid JSON:\n")
	b.WriteString("{\n")
	fmt.Fprintf(b, "  \"recommendedPrice\": number (in %s - total project price),\n", market.Currency)
	fmt.Fprintf(b, "  \"reasoning\": \"Detailed explanation of %s\",\n", reasoning)
	b.WriteString("  \"costBreakdown\": [\n    {\n")
	fmt.Fprintf(b, "      \"role\": \"%s\",\n", role)
	fmt.Fprintf(b, "      \"hours\": number (%s),\n", hours)
	fmt.Fprintf(b, "      \"rate\": number (%s),\n", rate)
	fmt.Fprintf(b, "      \"total\": number (%s),\n", total)
	fmt.Fprintf(b, "      \"justification\": \"%s\"\n", why)
	b.WriteString("    }\n  ],\n")
	b.WriteString("  \"marketInsights\": \"market analysis\",\n")
	b.WriteString("  \"profitMarginRecommendation\": number (percent),\n")
	b.WriteString("  \"confidence\": number (0-100)\n")
	b.WriteString("}")
}

func joinRoles(roles []models.RoleType) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
