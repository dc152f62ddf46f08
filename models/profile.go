package models

import "time"

// BusinessProfile describes the issuing business printed on every document.
type BusinessProfile struct {
	ID                  string    `json:"id"`
	CompanyName         string    `json:"companyName"`
	Logo                string    `json:"logo,omitempty"` // data URL
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	ZipCode             string    `json:"zipCode"`
	Country             string    `json:"country"`
	BankName            string    `json:"bankName,omitempty"`
	AccountNumber       string    `json:"accountNumber,omitempty"`
	AccountType         string    `json:"accountType,omitempty"`
	RoutingNumber       string    `json:"routingNumber,omitempty"`
	TaxID               string    `json:"taxId,omitempty"`
	VATNumber           string    `json:"vatNumber,omitempty"`
	CompanyRegistration string    `json:"companyRegistration,omitempty"`
	PostalAddress       string    `json:"postalAddress,omitempty"`
	PhysicalAddress     string    `json:"physicalAddress,omitempty"`
	SalesRep            string    `json:"salesRep,omitempty"`
	DefaultCurrency     string    `json:"defaultCurrency"`
	InvoicePrefix       string    `json:"invoicePrefix"`
	InvoiceNumberStart  int       `json:"invoiceNumberStart"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Client is the party a document is addressed to.
type Client struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone,omitempty"`
	Company         string         `json:"company,omitempty"`
	Address         string         `json:"address,omitempty"`
	City            string         `json:"city,omitempty"`
	State           string         `json:"state,omitempty"`
	ZipCode         string         `json:"zipCode,omitempty"`
	Country         string         `json:"country,omitempty"`
	Category        ClientCategory `json:"category"`
	Notes           string         `json:"notes,omitempty"`
	VATNumber       string         `json:"vatNumber,omitempty"`
	PhysicalAddress string         `json:"physicalAddress,omitempty"`
	PostalAddress   string         `json:"postalAddress,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// RatePreset is a saved hourly rate for a role.
type RatePreset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        RoleType  `json:"role"`
	HourlyRate  float64   `json:"hourlyRate"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AIConfig is the user-level provider selection. When Enabled is false or
// APIKey is empty the pricing engine runs the local estimate only.
type AIConfig struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	Enabled  bool   `json:"enabled"`
}

// Active reports whether the config names a usable provider.
func (c AIConfig) Active() bool {
	return c.Enabled && c.Provider != "" && c.APIKey != ""
}
