package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter renders documents as a single-sheet workbook with excelize.
type ExcelExporter struct{}

func (ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (ExcelExporter) Extension() string { return "xlsx" }

// Export creates the workbook and returns its contents. Amounts are written as
// numbers rounded to cents with a thousands format, so the sheet stays usable
// for further calculation.
func (ExcelExporter) Export(data *DocumentExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := data.DocumentNumber
	if sheetName == "" {
		sheetName = data.Title
	}
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Document"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Columns A through G.
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]
	widths := []float64{44, 10, 16, 10, 10, 18, 18}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#212529"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	textStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		NumFmt: 4, // #,##0.00
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		NumFmt: 4,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header block ────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title+" "+data.DocumentNumber))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	meta := []struct{ label, value string }{
		{"From", data.From.Name},
		{"To", firstNonEmpty(data.To.Company, data.To.Name)},
		{"Reference", data.Reference},
		{"Date", data.IssueDate},
		{"Due Date", data.DueDate},
		{"Currency", data.CurrencyCode},
	}
	row := 2
	for _, m := range meta {
		if m.value == "" {
			continue
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), m.label+": "+sanitizeExcelCell(m.value))
		row++
	}
	row++

	// ── Line items ──────────────────────────────────────────────────────

	headers := []string{"Description", "Quantity", "Excl. Price", "Disc %", "VAT %", "Excl. Total", "Incl. Total"}
	headerRow := row
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], headerRow), h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), headerStyle)
	row++

	for _, item := range data.LineItems {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+r, sanitizeExcelCell(item.Description))
		f.SetCellValue(sheetName, "B"+r, item.Quantity)
		f.SetCellValue(sheetName, "C"+r, RoundMoney(item.UnitPrice))
		f.SetCellValue(sheetName, "D"+r, RoundMoney(item.DiscountPct))
		f.SetCellValue(sheetName, "E"+r, item.TaxRate)
		f.SetCellValue(sheetName, "F"+r, RoundMoney(item.ExclTotal))
		f.SetCellValue(sheetName, "G"+r, RoundMoney(item.InclTotal))
		f.SetCellStyle(sheetName, "A"+r, "B"+r, textStyle)
		f.SetCellStyle(sheetName, "C"+r, "C"+r, moneyStyle)
		f.SetCellStyle(sheetName, "D"+r, "E"+r, textStyle)
		f.SetCellStyle(sheetName, "F"+r, "G"+r, moneyStyle)
		row++
	}
	row++

	// ── Totals ──────────────────────────────────────────────────────────

	t := data.Totals
	summary := []struct {
		label  string
		amount float64
	}{
		{"Total Discount", t.DiscountAmount},
		{"Total Exclusive", t.AfterDiscount()},
		{"Total VAT", t.TaxAmount},
		{"Sub Total", t.Subtotal},
		{"Grand Total", t.Total},
		{"BALANCE DUE", t.Total},
	}
	for _, s := range summary {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "F"+r, s.label)
		f.SetCellStyle(sheetName, "F"+r, "F"+r, summaryLabelStyle)
		f.SetCellValue(sheetName, "G"+r, RoundMoney(s.amount))
		f.SetCellStyle(sheetName, "G"+r, "G"+r, summaryValueStyle)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
