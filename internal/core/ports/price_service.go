package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// CreatePriceInput carries a new category rate. The owner is stamped from
// the acting admin.
type CreatePriceInput struct {
	Category string
	Rate     decimal.Decimal
}

// UpdatePriceInput carries optional field updates; nil means unchanged.
type UpdatePriceInput struct {
	Category *string
	Rate     *decimal.Decimal
}

// PriceService covers rate-table CRUD under ownership scoping.
type PriceService interface {
	Create(ctx context.Context, actor domain.Actor, input CreatePriceInput) (*domain.Price, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Price, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdatePriceInput) (*domain.Price, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
