package report

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// writeTemplate creates a minimal invoice template: branding rows above
// the anchor, nothing at or below it.
func writeTemplate(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetCellValue(sheet, "A1", "INVOICE")
	_ = f.SetCellValue(sheet, "A13", "Category / Date / Quantity / Rate / Amount")

	path := filepath.Join(t.TempDir(), "template.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save template: %v", err)
	}
	return path
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleItems() ([]ports.LineItem, ports.Totals) {
	items := []ports.LineItem{
		{
			Category: "unknown",
			Date:     date("2025-01-02"),
			Quantity: 3,
			Rate:     decimal.Zero,
			Amount:   decimal.Zero,
		},
		{
			Category: "Retouch",
			Date:     date("2025-01-05"),
			Quantity: 10,
			Rate:     decimal.RequireFromString("2.50"),
			Amount:   decimal.RequireFromString("25.00"),
		},
	}
	return items, ports.Totals{Quantity: 13, Amount: decimal.RequireFromString("25.00")}
}

func cellValue(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("get cell %s: %v", ref, err)
	}
	return v
}

func TestXLSXRenderer_Render(t *testing.T) {
	renderer := NewXLSXRenderer(writeTemplate(t), "US Dollars")
	items, totals := sampleItems()

	content, err := renderer.Render(&domain.Project{ID: "p1", Name: "X"}, items, totals)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("reopen rendered workbook: %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	// Line items start at the anchor row, chronological order.
	if got := cellValue(t, f, sheet, "B14"); got != "unknown" {
		t.Fatalf("B14 = %q, want unknown", got)
	}
	if got := cellValue(t, f, sheet, "C14"); got != "2025-01-02" {
		t.Fatalf("C14 = %q, want 2025-01-02", got)
	}
	if got := cellValue(t, f, sheet, "D14"); got != "3" {
		t.Fatalf("D14 = %q, want 3", got)
	}
	if got := cellValue(t, f, sheet, "B15"); got != "Retouch" {
		t.Fatalf("B15 = %q, want Retouch", got)
	}
	if got := cellValue(t, f, sheet, "E15"); got != "2.5" {
		t.Fatalf("E15 = %q, want 2.5", got)
	}
	if got := cellValue(t, f, sheet, "F15"); got != "25" {
		t.Fatalf("F15 = %q, want 25", got)
	}

	// Summary sits two rows below the last line item: quantity and amount
	// only, no rate sum.
	if got := cellValue(t, f, sheet, "D18"); got != "13" {
		t.Fatalf("summary quantity D18 = %q, want 13", got)
	}
	if got := cellValue(t, f, sheet, "F18"); got != "25" {
		t.Fatalf("summary amount F18 = %q, want 25", got)
	}
	if got := cellValue(t, f, sheet, "E18"); got != "" {
		t.Fatalf("rate column must have no summary, got %q", got)
	}

	// The words row directly under the summary.
	if got := cellValue(t, f, sheet, "B19"); got != "Twenty-Five US Dollars Only" {
		t.Fatalf("words row B19 = %q", got)
	}

	// The template boilerplate above the anchor survives untouched.
	if got := cellValue(t, f, sheet, "A1"); got != "INVOICE" {
		t.Fatalf("A1 = %q, template header lost", got)
	}
}

func TestXLSXRenderer_SingleItemNoInsert(t *testing.T) {
	renderer := NewXLSXRenderer(writeTemplate(t), "US Dollars")
	items := []ports.LineItem{{
		Category: "Edit",
		Date:     date("2025-02-01"),
		Quantity: 2,
		Rate:     decimal.NewFromInt(4),
		Amount:   decimal.NewFromInt(8),
	}}
	totals := ports.Totals{Quantity: 2, Amount: decimal.NewFromInt(8)}

	content, err := renderer.Render(&domain.Project{ID: "p1", Name: "X"}, items, totals)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	f, _ := excelize.OpenReader(bytes.NewReader(content))
	defer f.Close()
	sheet := f.GetSheetName(0)

	if got := cellValue(t, f, sheet, "B14"); got != "Edit" {
		t.Fatalf("B14 = %q, want Edit", got)
	}
	// One item: summary at anchor+1+2 = 17.
	if got := cellValue(t, f, sheet, "D17"); got != "2" {
		t.Fatalf("summary quantity D17 = %q, want 2", got)
	}
}

func TestXLSXRenderer_AttachmentLink(t *testing.T) {
	renderer := NewXLSXRenderer(writeTemplate(t), "US Dollars")
	items, totals := sampleItems()
	project := &domain.Project{ID: "p1", Name: "X", AttachmentURL: "https://example.com/brief.pdf"}

	content, err := renderer.Render(project, items, totals)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	f, _ := excelize.OpenReader(bytes.NewReader(content))
	defer f.Close()
	sheet := f.GetSheetName(0)

	// Words row 19 is the last populated row, so the link lands on 21.
	if got := cellValue(t, f, sheet, "A21"); got != "Attachment:" {
		t.Fatalf("A21 = %q, want Attachment:", got)
	}
	if got := cellValue(t, f, sheet, "B21"); got != "View Project Attachment" {
		t.Fatalf("B21 = %q", got)
	}

	ok, target, err := f.GetCellHyperLink(sheet, "B21")
	if err != nil || !ok {
		t.Fatalf("B21 must carry a hyperlink: %v", err)
	}
	if target != "https://example.com/brief.pdf" {
		t.Fatalf("hyperlink target = %q", target)
	}
}

func TestXLSXRenderer_NoItemsNoAttachment(t *testing.T) {
	renderer := NewXLSXRenderer(writeTemplate(t), "US Dollars")

	content, err := renderer.Render(&domain.Project{ID: "p1", Name: "Empty"}, nil, ports.Totals{Amount: decimal.Zero})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	f, _ := excelize.OpenReader(bytes.NewReader(content))
	defer f.Close()
	sheet := f.GetSheetName(0)

	if got := cellValue(t, f, sheet, "B14"); got != "" {
		t.Fatalf("no line items expected, B14 = %q", got)
	}
}

func TestXLSXRenderer_TemplateMissing(t *testing.T) {
	renderer := NewXLSXRenderer(filepath.Join(t.TempDir(), "absent.xlsx"), "US Dollars")

	_, err := renderer.Render(&domain.Project{ID: "p1"}, nil, ports.Totals{Amount: decimal.Zero})
	if !errors.Is(err, domain.ErrTemplateMissing) {
		t.Fatalf("expected ErrTemplateMissing, got %v", err)
	}
}
