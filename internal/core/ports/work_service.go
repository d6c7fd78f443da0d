package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// CreateWorkEntryInput carries a new work log. The acting member is
// stamped as the entry's actor; ProjectID may be empty for unbilled work.
type CreateWorkEntryInput struct {
	ProjectID string
	Category  string
	Quantity  int
	Date      time.Time
}

// WorkEntryView decorates an entry with display names for dashboards.
type WorkEntryView struct {
	Entry       *domain.WorkEntry
	Username    string
	ProjectName string
}

// DashboardResult bundles the role-filtered datasets behind the admin
// dashboard: entries newest first, a lowercased rate lookup, and the
// actor's projects.
type DashboardResult struct {
	Entries  []WorkEntryView
	Rates    map[string]decimal.Decimal
	Projects []*domain.Project
}

// WorkEntryService covers work logging and scoped reads.
type WorkEntryService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateWorkEntryInput) (*domain.WorkEntry, error)
	List(ctx context.Context, actor domain.Actor) ([]WorkEntryView, error)
	Dashboard(ctx context.Context, actor domain.Actor) (*DashboardResult, error)
}
