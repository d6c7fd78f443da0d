package ports

import (
	"context"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// WorkEntryRepository defines persistence operations for work logs.
type WorkEntryRepository interface {
	Create(ctx context.Context, e *domain.WorkEntry) (*domain.WorkEntry, error)
	// List returns the entries visible under scope, newest first.
	List(ctx context.Context, scope domain.Scope) ([]*domain.WorkEntry, error)
	// ListForProject returns every entry logged against the project in
	// ascending date order, ties broken by creation order. Invoices are
	// read chronologically, so this ordering is part of the contract.
	ListForProject(ctx context.Context, projectID string) ([]*domain.WorkEntry, error)
}
