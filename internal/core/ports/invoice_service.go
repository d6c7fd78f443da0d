package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// LineItem is one aggregated invoice row.
type LineItem struct {
	Category string
	Date     time.Time
	Quantity int
	Rate     decimal.Decimal
	Amount   decimal.Decimal
}

// Totals carries the running sums over a line-item sequence. Rate has no
// meaningful sum and is intentionally absent.
type Totals struct {
	Quantity int
	Amount   decimal.Decimal
}

// InvoiceRenderer turns aggregated line items into the final document
// bytes. Returns domain.ErrTemplateMissing when the template artifact is
// unavailable.
type InvoiceRenderer interface {
	Render(project *domain.Project, items []LineItem, totals Totals) ([]byte, error)
}

// InvoiceResult is the generated artifact plus its deterministic filename.
type InvoiceResult struct {
	Filename string
	Content  []byte
}

// InvoiceService generates the invoice document for one project on behalf
// of an owning admin or a super admin.
type InvoiceService interface {
	Generate(ctx context.Context, actor domain.Actor, projectID string) (*InvoiceResult, error)
}
