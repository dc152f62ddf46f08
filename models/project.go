package models

import (
	"errors"
	"fmt"
)

// ErrInvalidProjectInput is returned by ProjectInput.Validate.
var ErrInvalidProjectInput = errors.New("invalid project input")

type ClientCategory string

const (
	ClientIndividual    ClientCategory = "individual"
	ClientSmallBusiness ClientCategory = "small-business"
	ClientEnterprise    ClientCategory = "enterprise"
	ClientNonProfit     ClientCategory = "non-profit"
)

type ProjectSize string

const (
	SizeSmall      ProjectSize = "small"
	SizeMedium     ProjectSize = "medium"
	SizeLarge      ProjectSize = "large"
	SizeEnterprise ProjectSize = "enterprise"
)

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

type RoleType string

const (
	RoleDeveloper  RoleType = "developer"
	RoleDesigner   RoleType = "designer"
	RoleManager    RoleType = "manager"
	RoleConsultant RoleType = "consultant"
	RoleQA         RoleType = "qa"
	RoleDevOps     RoleType = "devops"
	RoleOther      RoleType = "other"
)

// AllRoles lists every role in display order.
var AllRoles = []RoleType{RoleDeveloper, RoleDesigner, RoleManager, RoleConsultant, RoleQA, RoleDevOps, RoleOther}

type Level string

const (
	LevelJunior Level = "junior"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
	LevelLead   Level = "lead"
)

type PricingModel string

const (
	PricingHourly       PricingModel = "hourly"
	PricingFeatureBased PricingModel = "feature-based"
)

// ProjectInput is the structured project description fed to the pricing engine.
type ProjectInput struct {
	ClientCategory    ClientCategory `json:"clientCategory"`
	ProjectSize       ProjectSize    `json:"projectSize"`
	Complexity        Complexity     `json:"complexity"`
	EstimatedDuration int            `json:"estimatedDuration"` // weeks
	TeamSize          int            `json:"teamSize"`
	Roles             []RoleType     `json:"roles"`
	Description       string         `json:"description,omitempty"`
	PricingModel      PricingModel   `json:"pricingModel,omitempty"`
	Features          []string       `json:"features,omitempty"`
}

// Validate checks the preconditions the pricing engine relies on. The engine
// itself never calls it; UI handlers do before invoking the engine.
func (p ProjectInput) Validate() error {
	switch p.ClientCategory {
	case ClientIndividual, ClientSmallBusiness, ClientEnterprise, ClientNonProfit:
	default:
		return fmt.Errorf("%w: unknown client category %q", ErrInvalidProjectInput, p.ClientCategory)
	}
	switch p.ProjectSize {
	case SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
	default:
		return fmt.Errorf("%w: unknown project size %q", ErrInvalidProjectInput, p.ProjectSize)
	}
	switch p.Complexity {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
	default:
		return fmt.Errorf("%w: unknown complexity %q", ErrInvalidProjectInput, p.Complexity)
	}
	if p.EstimatedDuration <= 0 {
		return fmt.Errorf("%w: estimated duration must be positive", ErrInvalidProjectInput)
	}
	if p.TeamSize <= 0 {
		return fmt.Errorf("%w: team size must be positive", ErrInvalidProjectInput)
	}
	if len(p.Roles) == 0 {
		return fmt.Errorf("%w: at least one role is required", ErrInvalidProjectInput)
	}
	if p.IsFeatureBased() && len(p.Features) == 0 {
		return fmt.Errorf("%w: feature-based pricing needs at least one feature", ErrInvalidProjectInput)
	}
	return nil
}

// IsFeatureBased reports whether the input asks for per-feature pricing.
func (p ProjectInput) IsFeatureBased() bool {
	return p.PricingModel == PricingFeatureBased
}

// TeamMember is one suggested seat on the project team.
type TeamMember struct {
	ID                     string   `json:"id"`
	Role                   RoleType `json:"role"`
	EstimatedHours         float64  `json:"estimatedHours"`
	HourlyRate             float64  `json:"hourlyRate"`
	ContributionPercentage float64  `json:"contributionPercentage"`
	Level                  Level    `json:"level"`
}

type RecommendationSource string

const (
	SourceAI          RecommendationSource = "ai"
	SourceAlgorithmic RecommendationSource = "algorithmic"
)

// Recommendation is the pricing engine's output. It is recomputed for every
// request and never edited in place.
type Recommendation struct {
	TotalPrice      float64              `json:"totalPrice"`
	Currency        string               `json:"currency"`
	Breakdown       []LineItem           `json:"breakdown"`
	ProfitMargin    float64              `json:"profitMargin"`
	Reasoning       string               `json:"reasoning"`
	MarketInsights  string               `json:"marketInsights,omitempty"`
	TeamSuggestions []TeamMember         `json:"teamSuggestions"`
	Confidence      float64              `json:"confidence"`
	Source          RecommendationSource `json:"source"`
	Provider        string               `json:"provider,omitempty"`
}
