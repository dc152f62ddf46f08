package store

import (
	"time"

	"github.com/google/uuid"

	"smartquote/models"
)

type presetSeed struct {
	name        string
	role        models.RoleType
	rate        float64
	description string
}

var defaultPresets = []presetSeed{
	{"Junior Developer", models.RoleDeveloper, 50, "Entry-level developer"},
	{"Senior Developer", models.RoleDeveloper, 100, "Experienced developer"},
	{"UI/UX Designer", models.RoleDesigner, 75, "User interface and experience design"},
	{"Project Manager", models.RoleManager, 85, "Project coordination and delivery"},
	{"Consultant", models.RoleConsultant, 120, "Technical and strategic advice"},
}

// DefaultState is the state of a fresh installation: no profile, clients or
// documents, and a handful of USD rate presets.
func DefaultState(now time.Time) State {
	presets := make([]models.RatePreset, 0, len(defaultPresets))
	for _, p := range defaultPresets {
		presets = append(presets, models.RatePreset{
			ID:          uuid.NewString(),
			Name:        p.name,
			Role:        p.role,
			HourlyRate:  p.rate,
			Currency:    "USD",
			Description: p.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return State{
		Clients:     []models.Client{},
		RatePresets: presets,
		Documents:   []models.Document{},
	}
}
