package ports

import (
	"context"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// PriceRepository defines persistence operations for category rates.
type PriceRepository interface {
	// Create inserts a new price. Returns domain.ErrDuplicateCategory when
	// the owner already prices the category (case-insensitive).
	Create(ctx context.Context, p *domain.Price) (*domain.Price, error)
	FindByID(ctx context.Context, id string) (*domain.Price, error)
	List(ctx context.Context, scope domain.Scope) ([]*domain.Price, error)
	// Update persists changes; renaming onto an existing category of the
	// same owner returns domain.ErrDuplicateCategory.
	Update(ctx context.Context, p *domain.Price) error
	Delete(ctx context.Context, id string) error
}
