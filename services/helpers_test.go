package services

import (
	"bytes"
	"math"
	"time"

	"smartquote/models"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// floatClose reports whether a and b are within 1e-9 of each other.
func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testProfile() *models.BusinessProfile {
	return &models.BusinessProfile{
		ID:                  "bp1",
		CompanyName:         "Acme Studio",
		Email:               "hello@acme.test",
		Phone:               "+27 21 555 0100",
		Address:             "12 Long Street",
		City:                "Cape Town",
		State:               "WC",
		ZipCode:             "8001",
		Country:             "South Africa",
		BankName:            "First Bank",
		AccountNumber:       "62000000001",
		AccountType:         "Cheque",
		RoutingNumber:       "250655",
		VATNumber:           "4123456789",
		CompanyRegistration: "2020/123456/07",
		DefaultCurrency:     "ZAR",
		InvoicePrefix:       "ACM",
		InvoiceNumberStart:  2000,
	}
}

func testClient() *models.Client {
	return &models.Client{
		ID:        "c1",
		Name:      "Jo Buyer",
		Email:     "jo@client.test",
		Company:   "Client Co",
		Address:   "1 Main Road",
		City:      "Durban",
		Country:   "South Africa",
		Category:  models.ClientSmallBusiness,
		VATNumber: "4999999999",
	}
}

func testDocument() models.Document {
	return models.Document{
		ID:             "d1",
		Type:           models.DocumentInvoice,
		Status:         models.StatusDraft,
		DocumentNumber: "ACM-2000",
		Reference:      "PO-77",
		ClientID:       "c1",
		LineItems: []models.LineItem{
			{ID: "li1", Description: "Design", Quantity: 2, UnitPrice: 100, Total: 200},
			{ID: "li2", Description: "Hosting", Quantity: 1, UnitPrice: 50, Total: 50},
		},
		Discount:  models.Discount{Amount: 10, Type: models.DiscountPercentage},
		TaxRate:   15,
		Currency:  "ZAR",
		Notes:     "Thank you for your business.",
		IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}
