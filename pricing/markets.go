package pricing

import (
	"strings"

	"smartquote/models"
)

// Market is a pricing jurisdiction: the currency estimates are produced in,
// the local fallback rate table and the rate guidance embedded in prompts.
type Market struct {
	Code     string
	Region   string
	Currency string
	Symbol   string

	// BaseRates are hourly rates per role used by the local estimate.
	BaseRates map[models.RoleType]float64

	// RateGuidance and FeatureGuidance are pasted into the prompt verbatim.
	RateGuidance    string
	FeatureGuidance string
	MarginGuidance  string
}

// BaseRate returns the hourly rate for role, or the "other" rate when the
// role is not in the table.
func (m Market) BaseRate(role models.RoleType) float64 {
	if r, ok := m.BaseRates[role]; ok {
		return r
	}
	return m.BaseRates[models.RoleOther]
}

// SouthAfrica prices in ZAR.
var SouthAfrica = Market{
	Code:     "za",
	Region:   "SOUTH AFRICAN",
	Currency: "ZAR",
	Symbol:   "R",
	BaseRates: map[models.RoleType]float64{
		models.RoleDeveloper:  650,
		models.RoleDesigner:   550,
		models.RoleManager:    750,
		models.RoleConsultant: 1200,
		models.RoleQA:         450,
		models.RoleDevOps:     700,
		models.RoleOther:      500,
	},
	RateGuidance: `Junior Level:
- Developer: R300-R500/hr
- Designer: R300-R450/hr
- QA/Testing: R250-R400/hr

Mid Level:
- Developer: R500-R800/hr
- Designer: R450-R650/hr
- Project Manager: R600-R900/hr
- QA/Testing: R400-R550/hr

Senior Level:
- Developer: R800-R1500/hr
- Designer: R650-R900/hr
- Project Manager: R900-R1200/hr
- Consultant: R1000-R1800/hr`,
	FeatureGuidance: `Simple Features (R8,000 - R25,000 each):
- User login/registration: R12,000 - R18,000
- Basic contact form: R8,000 - R12,000
- Email notifications: R10,000 - R15,000
- Basic search: R15,000 - R20,000

Medium Features (R25,000 - R60,000 each):
- User profile management: R30,000 - R45,000
- File upload system: R35,000 - R50,000
- Admin dashboard: R40,000 - R60,000
- Reporting system: R35,000 - R55,000
- API integration: R30,000 - R50,000

Complex Features (R60,000 - R150,000 each):
- Payment gateway integration: R80,000 - R120,000
- Real-time chat system: R90,000 - R130,000
- Advanced analytics: R70,000 - R110,000
- Multi-user collaboration: R85,000 - R140,000
- E-commerce system: R100,000 - R150,000

Very Complex Features (R150,000+ each):
- Custom CRM system: R180,000 - R300,000
- AI/ML integration: R200,000 - R400,000
- Video streaming platform: R250,000 - R500,000
- Blockchain integration: R300,000+`,
	MarginGuidance: "30-40% for SA market",
}

// UnitedStates prices in USD using mid-level rates.
var UnitedStates = Market{
	Code:     "us",
	Region:   "UNITED STATES",
	Currency: "USD",
	Symbol:   "$",
	BaseRates: map[models.RoleType]float64{
		models.RoleDeveloper:  70,
		models.RoleDesigner:   60,
		models.RoleManager:    75,
		models.RoleConsultant: 90,
		models.RoleQA:         50,
		models.RoleDevOps:     80,
		models.RoleOther:      65,
	},
	RateGuidance: `Junior Level:
- Developer: $40/hr
- Designer: $35/hr
- Project Manager: $50/hr
- Consultant: $60/hr
- QA/Testing: $30/hr
- DevOps: $50/hr

Mid Level:
- Developer: $70/hr
- Designer: $60/hr
- Project Manager: $75/hr
- Consultant: $90/hr
- QA/Testing: $50/hr
- DevOps: $80/hr

Senior Level:
- Developer: $100/hr
- Designer: $90/hr
- Project Manager: $105/hr
- Consultant: $130/hr
- QA/Testing: $75/hr
- DevOps: $115/hr

Lead Level:
- Developer: $130/hr
- Designer: $115/hr
- Project Manager: $140/hr
- Consultant: $170/hr
- QA/Testing: $95/hr
- DevOps: $150/hr`,
	FeatureGuidance: `Simple Features ($500 - $1,500 each):
- User login/registration, contact form, email notifications, basic search

Medium Features ($1,500 - $4,000 each):
- Profile management, file uploads, admin dashboard, reporting, API integration

Complex Features ($4,000 - $10,000 each):
- Payment gateway, real-time chat, advanced analytics, collaboration, e-commerce

Very Complex Features ($10,000+ each):
- Custom CRM, AI/ML integration, video streaming, blockchain integration`,
	MarginGuidance: "35-45% for US market",
}

// MarketFor returns the market for code, defaulting to SouthAfrica.
func MarketFor(code string) Market {
	switch strings.ToLower(code) {
	case UnitedStates.Code, "usd":
		return UnitedStates
	}
	return SouthAfrica
}
