package pricing

import (
	"strings"
	"unicode"

	"smartquote/models"
)

// roleKeywords maps free-text role labels to a RoleType. Entries are checked
// in order and the first match wins, so the more specific roles come first
// ("QA Engineer" is qa, not developer). Keywords with surrounding spaces only
// match whole words of the normalised label.
var roleKeywords = []struct {
	role     models.RoleType
	keywords []string
}{
	{models.RoleDevOps, []string{"devops", "dev ops", "infrastructure", " sre ", "cloud", "deploy", "platform"}},
	{models.RoleQA, []string{" qa ", "quality", "test"}},
	{models.RoleDesigner, []string{"design", " ui ", " ux ", "graphic"}},
	{models.RoleManager, []string{"manag", " pm ", "scrum", "coordinat", "product owner"}},
	{models.RoleConsultant, []string{"consult", "advis", "strateg", "architect"}},
	{models.RoleDeveloper, []string{"develop", "engineer", "program", "coder", "frontend", "backend", "full stack", "fullstack"}},
}

// InferRole classifies a role label by case-insensitive substring match
// against roleKeywords, defaulting to RoleOther.
func InferRole(label string) models.RoleType {
	normalised := normaliseLabel(label)
	for _, entry := range roleKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(normalised, kw) {
				return entry.role
			}
		}
	}
	return models.RoleOther
}

// normaliseLabel lowercases label, turns punctuation into spaces and pads it
// so whole-word keywords can match at either end.
func normaliseLabel(label string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, label)
	return " " + strings.Join(strings.Fields(mapped), " ") + " "
}

// Level thresholds on the hourly rate, in the unit the prompt requested.
const (
	midThreshold    = 60
	seniorThreshold = 90
	leadThreshold   = 120
)

// InferLevel maps an hourly rate to a seniority level.
func InferLevel(rate float64) models.Level {
	switch {
	case rate < midThreshold:
		return models.LevelJunior
	case rate < seniorThreshold:
		return models.LevelMid
	case rate < leadThreshold:
		return models.LevelSenior
	}
	return models.LevelLead
}
