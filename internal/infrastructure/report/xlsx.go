// Package report renders aggregated invoice data into the fixed-layout
// XLSX template. The template's anchor row and columns are a contract:
// only the cells described here are ever mutated.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

const (
	// anchorRow is the fixed template row where line items begin.
	anchorRow = 14

	colCategory = "B"
	colDate     = "C"
	colQuantity = "D"
	colRate     = "E"
	colAmount   = "F"
)

// XLSXRenderer writes invoices into a spreadsheet template on disk.
type XLSXRenderer struct {
	templatePath string
	currency     string
}

func NewXLSXRenderer(templatePath, currency string) *XLSXRenderer {
	return &XLSXRenderer{templatePath: templatePath, currency: currency}
}

// Render populates the template with line items, summary totals, the
// total-in-words row, and an optional attachment link, then returns the
// document bytes. A missing template yields domain.ErrTemplateMissing.
func (r *XLSXRenderer) Render(project *domain.Project, items []ports.LineItem, totals ports.Totals) ([]byte, error) {
	f, err := excelize.OpenFile(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMissing, r.templatePath)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	_ = f.UnprotectSheet(sheet)

	if len(items) > 0 {
		// Push the template boilerplate below the table out of the way:
		// the anchor row itself is reused, so only n-1 rows are inserted.
		if len(items) > 1 {
			if err := f.InsertRows(sheet, anchorRow+1, len(items)-1); err != nil {
				return nil, fmt.Errorf("insert rows: %w", err)
			}
		}

		row := anchorRow
		for _, item := range items {
			rate, _ := item.Rate.Float64()
			amount, _ := item.Amount.Float64()
			_ = f.SetCellValue(sheet, cell(colCategory, row), item.Category)
			_ = f.SetCellValue(sheet, cell(colDate, row), item.Date.Format("2006-01-02"))
			_ = f.SetCellValue(sheet, cell(colQuantity, row), item.Quantity)
			_ = f.SetCellValue(sheet, cell(colRate, row), rate)
			_ = f.SetCellValue(sheet, cell(colAmount, row), amount)
			row++
		}

		if err := r.writeSummary(f, sheet, len(items), totals); err != nil {
			return nil, err
		}
	}

	if project.AttachmentURL != "" {
		if err := r.writeAttachmentLink(f, sheet, project.AttachmentURL); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSummary emphasizes totals two rows below the last line item, with
// the amount-in-words line directly underneath. Only quantity and amount
// are summed; a per-line rate has no meaningful total.
func (r *XLSXRenderer) writeSummary(f *excelize.File, sheet string, lineItems int, totals ports.Totals) error {
	summaryRow := anchorRow + lineItems + 2

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("summary style: %w", err)
	}

	totalAmount, _ := totals.Amount.Float64()
	qtyCell := cell(colQuantity, summaryRow)
	amountCell := cell(colAmount, summaryRow)
	_ = f.SetCellValue(sheet, qtyCell, totals.Quantity)
	_ = f.SetCellStyle(sheet, qtyCell, qtyCell, bold)
	_ = f.SetCellValue(sheet, amountCell, totalAmount)
	_ = f.SetCellStyle(sheet, amountCell, amountCell, bold)

	italic, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	if err != nil {
		return fmt.Errorf("words style: %w", err)
	}

	wordsCell := cell(colCategory, summaryRow+1)
	_ = f.SetCellValue(sheet, wordsCell, AmountInWords(totals.Amount, r.currency))
	_ = f.SetCellStyle(sheet, wordsCell, wordsCell, italic)
	return nil
}

// writeAttachmentLink appends a hyperlink row two rows below the last
// populated row of the sheet.
func (r *XLSXRenderer) writeAttachmentLink(f *excelize.File, sheet, url string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet rows: %w", err)
	}
	row := len(rows) + 2

	linkCell := cell(colCategory, row)
	_ = f.SetCellValue(sheet, cell("A", row), "Attachment:")
	_ = f.SetCellValue(sheet, linkCell, "View Project Attachment")
	if err := f.SetCellHyperLink(sheet, linkCell, url, "External"); err != nil {
		return fmt.Errorf("attachment hyperlink: %w", err)
	}

	link, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "0000FF", Underline: "single"},
	})
	if err != nil {
		return fmt.Errorf("attachment style: %w", err)
	}
	_ = f.SetCellStyle(sheet, linkCell, linkCell, link)
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
