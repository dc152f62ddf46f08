package services

import (
	"strings"
	"time"

	"smartquote/models"
)

// DocumentExportData holds everything an Exporter needs to render a document.
// All money fields are unrounded; exporters round at presentation.
type DocumentExportData struct {
	// Header
	Title          string // QUOTATION or INVOICE
	DocumentType   models.DocumentType
	DocumentNumber string
	Reference      string
	IssueDate      string
	DueDate        string
	SalesRep       string
	Status         string

	// Currency
	CurrencyCode   string
	CurrencySymbol string
	CurrencyName   string

	From ExportParty
	To   ExportParty
	Logo string // data URL, may be empty

	LineItems []ExportLineItem

	// Totals
	TaxRate         float64
	DiscountPercent float64
	Totals          models.DocumentTotals
	AmountInWords   string

	// Footer sections
	Notes        string
	Terms        string
	PaymentTerms string
	Bank         ExportBankDetails
}

// ExportParty is the FROM or TO block.
type ExportParty struct {
	Name            string
	Company         string
	Email           string
	Phone           string
	VATNumber       string
	Registration    string
	AddressLines    string // formatted multi-line
	PhysicalAddress string
	PostalAddress   string
}

// ExportBankDetails holds the issuer's banking details.
type ExportBankDetails struct {
	BankName      string
	AccountNumber string
	AccountType   string
	RoutingNumber string
}

// Empty reports whether no bank field is set.
func (b ExportBankDetails) Empty() bool {
	return b.BankName == "" && b.AccountNumber == "" && b.AccountType == "" && b.RoutingNumber == ""
}

// ExportLineItem holds a single row of the line-item table.
type ExportLineItem struct {
	SINo        int
	Description string
	Quantity    float64
	UnitPrice   float64
	TaxRate     float64
	ExclTotal   float64
	InclTotal   float64
	DiscountPct float64
}

const exportDateLayout = "02 Jan 2006"

// BuildDocumentExportData assembles export data for doc. It validates that the
// profile and client are present and computes totals with ComputeTotals; no
// other financial computation is done.
func BuildDocumentExportData(profile *models.BusinessProfile, client *models.Client, doc models.Document) (*DocumentExportData, error) {
	if err := ValidateForExport(profile, client); err != nil {
		return nil, err
	}

	totals := DocumentTotals(doc)
	discountPct := EffectiveDiscountPercent(totals)

	currency := doc.Currency
	if currency == "" {
		currency = profile.DefaultCurrency
	}

	data := &DocumentExportData{
		Title:           strings.ToUpper(string(doc.Type)),
		DocumentType:    doc.Type,
		DocumentNumber:  doc.DocumentNumber,
		Reference:       doc.Reference,
		IssueDate:       formatDate(doc.IssueDate),
		SalesRep:        firstNonEmpty(doc.SalesRep, profile.SalesRep),
		Status:          string(doc.Status),
		CurrencyCode:    currency,
		CurrencySymbol:  CurrencySymbol(currency),
		CurrencyName:    CurrencyName(currency),
		Logo:            profile.Logo,
		TaxRate:         doc.TaxRate,
		DiscountPercent: discountPct,
		Totals:          totals,
		AmountInWords:   AmountToWords(totals.Total, CurrencyName(currency)),
		Notes:           doc.Notes,
		Terms:           doc.Terms,
		PaymentTerms:    doc.PaymentTerms,
		Bank: ExportBankDetails{
			BankName:      profile.BankName,
			AccountNumber: profile.AccountNumber,
			AccountType:   profile.AccountType,
			RoutingNumber: profile.RoutingNumber,
		},
	}
	if doc.DueDate != nil {
		data.DueDate = formatDate(*doc.DueDate)
	}

	data.From = ExportParty{
		Name:            profile.CompanyName,
		Email:           profile.Email,
		Phone:           profile.Phone,
		VATNumber:       profile.VATNumber,
		Registration:    profile.CompanyRegistration,
		AddressLines:    formatAddress(profile.Address, profile.City, profile.State, profile.ZipCode, profile.Country),
		PhysicalAddress: profile.PhysicalAddress,
		PostalAddress:   profile.PostalAddress,
	}
	data.To = ExportParty{
		Name:            client.Name,
		Company:         client.Company,
		Email:           client.Email,
		Phone:           client.Phone,
		VATNumber:       client.VATNumber,
		AddressLines:    formatAddress(client.Address, client.City, client.State, client.ZipCode, client.Country),
		PhysicalAddress: client.PhysicalAddress,
		PostalAddress:   client.PostalAddress,
	}

	for i, item := range doc.LineItems {
		data.LineItems = append(data.LineItems, ExportLineItem{
			SINo:        i + 1,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     doc.TaxRate,
			ExclTotal:   item.Total,
			InclTotal:   InclusiveTotal(item, doc.TaxRate),
			DiscountPct: discountPct,
		})
	}

	return data, nil
}

// Filename returns the download name for the export, e.g. "invoice-INV-1003.pdf".
func (d *DocumentExportData) Filename(ext string) string {
	number := d.DocumentNumber
	if number == "" {
		number = "draft"
	}
	r := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-")
	return string(d.DocumentType) + "-" + r.Replace(number) + "." + ext
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(exportDateLayout)
}

// formatAddress joins street, then "city, state zip", then country, skipping blanks.
func formatAddress(street, city, state, zip, country string) string {
	locality := joinNonEmpty([]string{city, strings.TrimSpace(state + " " + zip)}, ", ")
	return joinNonEmpty([]string{street, locality, country}, "\n")
}

func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
