package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFLayout toggles the optional parts of the single document layout.
type PDFLayout struct {
	ShowLogo            bool
	ShowBankDetails     bool
	ShowInclusiveColumn bool
	ShowAmountInWords   bool
	Accent              props.Color
}

// DefaultPDFLayout shows every section with a charcoal accent.
func DefaultPDFLayout() PDFLayout {
	return PDFLayout{
		ShowLogo:            true,
		ShowBankDetails:     true,
		ShowInclusiveColumn: true,
		ShowAmountInWords:   true,
		Accent:              props.Color{Red: 33, Green: 37, Blue: 41},
	}
}

// PDFExporter renders documents with maroto/v2.
type PDFExporter struct {
	Layout PDFLayout
}

func (PDFExporter) ContentType() string { return "application/pdf" }
func (PDFExporter) Extension() string   { return "pdf" }

var (
	mutedColor = &props.Color{Red: 100, Green: 100, Blue: 100}
	whiteColor = &props.Color{Red: 255, Green: 255, Blue: 255}
	altRowBg   = &props.Color{Red: 248, Green: 249, Blue: 250}
	summaryBg  = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// Export creates the PDF and returns its raw bytes.
func (p PDFExporter) Export(data *DocumentExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	p.addHeader(m, data)
	p.addParties(m, data)
	p.addLineItemsTable(m, data)
	p.addTotals(m, data)
	if p.Layout.ShowAmountInWords {
		addAmountInWords(m, data)
	}
	addTextSection(m, "NOTES", data.Notes)
	addTextSection(m, "TERMS & CONDITIONS", data.Terms)
	if p.Layout.ShowBankDetails {
		addBankDetails(m, data)
	}
	addTextSection(m, "PAYMENT TERMS", data.PaymentTerms)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the logo or company name, the document title and the
// metadata block (number, reference, dates, sales rep, discount).
func (p PDFExporter) addHeader(m core.Maroto, data *DocumentExportData) {
	titleStyle := props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &p.Layout.Accent,
	}

	var brand core.Col
	logo := p.logoBytes(data)
	if logo != nil {
		brand = col.New(6).Add(image.NewFromBytes(logo, extension.Png, props.Rect{Left: 0, Percent: 90}))
	} else {
		brand = col.New(6).Add(text.New(data.From.Name, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
		}))
	}

	height := 12.0
	if logo != nil {
		height = 22
	}
	m.AddRows(
		row.New(height).Add(
			brand,
			col.New(6).Add(text.New(data.Title, titleStyle)),
		),
	)

	labelStyle := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Right, Color: mutedColor}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	meta := []struct{ label, value string }{
		{"Number:", data.DocumentNumber},
		{"Reference:", data.Reference},
		{"Date:", data.IssueDate},
		{"Due Date:", data.DueDate},
		{"Sales Rep:", data.SalesRep},
	}
	if data.DiscountPercent != 0 {
		meta = append(meta, struct{ label, value string }{"Overall Discount %:", FormatPercent(data.DiscountPercent)})
	}

	for _, f := range meta {
		if f.value == "" {
			continue
		}
		m.AddRows(
			row.New(5).Add(
				col.New(6),
				col.New(3).Add(text.New(f.label, labelStyle)),
				col.New(3).Add(text.New(f.value, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// logoBytes prepares the profile logo, or returns nil when it is disabled,
// missing or undecodable.
func (p PDFExporter) logoBytes(data *DocumentExportData) []byte {
	if !p.Layout.ShowLogo || data.Logo == "" {
		return nil
	}
	b, err := PrepareLogo(data.Logo)
	if err != nil {
		log.Printf("export_pdf: logoBytes: skipping logo: %v", err)
		return nil
	}
	return b
}

// addParties adds the FROM and TO blocks side by side.
func (p PDFExporter) addParties(m core.Maroto, data *DocumentExportData) {
	sectionLabel := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: mutedColor}
	boldValue := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	valueStyle := props.Text{Size: 8, Align: align.Left}

	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 243, Blue: 239}}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("FROM", sectionLabel)).WithStyle(headerCell),
			col.New(6).Add(text.New("TO", sectionLabel)).WithStyle(headerCell),
		),
	)

	toName := data.To.Name
	if data.To.Company != "" {
		toName = data.To.Company
	}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(data.From.Name, boldValue)),
			col.New(6).Add(text.New(toName, boldValue)),
		),
	)

	left := partyLines(data.From)
	right := partyLines(data.To)
	if data.To.Company != "" {
		right = append([]string{"Attn: " + data.To.Name}, right...)
	}

	n := max(len(left), len(right))
	for i := 0; i < n; i++ {
		m.AddRows(
			row.New(5).Add(
				col.New(6).Add(text.New(lineAt(left, i), valueStyle)),
				col.New(6).Add(text.New(lineAt(right, i), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// partyLines flattens a party into printable lines.
func partyLines(party ExportParty) []string {
	var lines []string
	if party.AddressLines != "" {
		lines = append(lines, strings.Split(party.AddressLines, "\n")...)
	}
	if party.PhysicalAddress != "" {
		lines = append(lines, fmtField("Physical", party.PhysicalAddress))
	}
	if party.PostalAddress != "" {
		lines = append(lines, fmtField("Postal", party.PostalAddress))
	}
	if contact := joinNonEmpty([]string{party.Email, party.Phone}, " | "); contact != "" {
		lines = append(lines, contact)
	}
	if party.VATNumber != "" {
		lines = append(lines, fmtField("VAT No", party.VATNumber))
	}
	if party.Registration != "" {
		lines = append(lines, fmtField("Reg No", party.Registration))
	}
	return lines
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// addLineItemsTable adds the line items table with header and body rows.
func (p PDFExporter) addLineItemsTable(m core.Maroto, data *DocumentExportData) {
	headerText := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: whiteColor}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: &p.Layout.Accent}

	descWidth := 3
	if !p.Layout.ShowInclusiveColumn {
		descWidth = 5
	}

	headers := []core.Col{
		col.New(descWidth).Add(text.New("Description", headerTextLeft)).WithStyle(headerCell),
		col.New(1).Add(text.New("Qty", headerText)).WithStyle(headerCell),
		col.New(2).Add(text.New("Excl. Price", headerText)).WithStyle(headerCell),
		col.New(1).Add(text.New("Disc %", headerText)).WithStyle(headerCell),
		col.New(1).Add(text.New("VAT %", headerText)).WithStyle(headerCell),
		col.New(2).Add(text.New("Excl. Total", headerText)).WithStyle(headerCell),
	}
	if p.Layout.ShowInclusiveColumn {
		headers = append(headers, col.New(2).Add(text.New("Incl. Total", headerText)).WithStyle(headerCell))
	}
	m.AddRows(row.New(8).Add(headers...))

	sym := data.CurrencySymbol
	for i, item := range data.LineItems {
		center := props.Text{Size: 7, Align: align.Center}
		left := props.Text{Size: 7, Align: align.Left}
		right := props.Text{Size: 7, Align: align.Right}

		cols := []core.Col{
			col.New(descWidth).Add(text.New(item.Description, left)),
			col.New(1).Add(text.New(formatQty(item.Quantity), right)),
			col.New(2).Add(text.New(FormatMoney(sym, item.UnitPrice), right)),
			col.New(1).Add(text.New(FormatPercent(item.DiscountPct), center)),
			col.New(1).Add(text.New(FormatPercent(item.TaxRate), center)),
			col.New(2).Add(text.New(FormatMoney(sym, item.ExclTotal), right)),
		}
		if p.Layout.ShowInclusiveColumn {
			cols = append(cols, col.New(2).Add(text.New(FormatMoney(sym, item.InclTotal), right)))
		}

		if i%2 == 1 {
			alt := &props.Cell{BackgroundColor: altRowBg}
			for j := range cols {
				cols[j] = cols[j].WithStyle(alt)
			}
		}

		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addTotals adds the right-aligned totals box.
func (p PDFExporter) addTotals(m core.Maroto, data *DocumentExportData) {
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	t := data.Totals
	sym := data.CurrencySymbol

	rows := []struct {
		label  string
		amount float64
	}{
		{"Total Discount", t.DiscountAmount},
		{"Total Exclusive", t.AfterDiscount()},
		{"Total VAT", t.TaxAmount},
		{"Sub Total", t.Subtotal},
		{"Grand Total", t.Total},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(7).Add(
				col.New(6),
				col.New(3).Add(text.New(r.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatMoney(sym, r.amount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	balanceCell := &props.Cell{BackgroundColor: &p.Layout.Accent}
	balanceStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: whiteColor}

	m.AddRows(
		row.New(8).Add(
			col.New(6),
			col.New(3).Add(text.New("BALANCE DUE", balanceStyle)).WithStyle(balanceCell),
			col.New(3).Add(text.New(FormatMoney(sym, t.Total), balanceStyle)).WithStyle(balanceCell),
		),
	)

	m.AddRows(row.New(3))
}

func addAmountInWords(m core.Maroto, data *DocumentExportData) {
	if data.AmountInWords == "" {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", data.AmountInWords), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(row.New(3))
}

// addTextSection adds a labelled free-text block if body is non-empty.
func addTextSection(m core.Maroto, label, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}

	sectionLabel := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: mutedColor}
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New(label, sectionLabel))))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(body, props.Text{Size: 8, Align: align.Left})),
		),
	)
	m.AddRows(row.New(3))
}

// addBankDetails adds the issuer's bank details section.
func addBankDetails(m core.Maroto, data *DocumentExportData) {
	if data.Bank.Empty() {
		return
	}

	sectionLabel := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 33, Green: 37, Blue: 41},
	}
	fieldLabel := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: mutedColor}
	fieldValue := props.Text{Size: 8, Align: align.Left}

	m.AddRows(row.New(7).Add(col.New(12).Add(text.New("BANKING DETAILS", sectionLabel))))

	bankRows := []struct{ label, value string }{
		{"Bank Name", data.Bank.BankName},
		{"Account No", data.Bank.AccountNumber},
		{"Account Type", data.Bank.AccountType},
		{"Branch / Routing", data.Bank.RoutingNumber},
	}
	for _, br := range bankRows {
		if br.value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(br.label, fieldLabel)),
				col.New(9).Add(text.New(br.value, fieldValue)),
			),
		)
	}

	m.AddRows(row.New(3))
}

func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}
