package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// PriceService implements rate-table CRUD under ownership scoping.
type PriceService struct {
	prices ports.PriceRepository
	log    zerolog.Logger
}

func NewPriceService(prices ports.PriceRepository, log zerolog.Logger) *PriceService {
	return &PriceService{prices: prices, log: log}
}

// Create stamps the acting admin as owner. One rate per category per owner:
// the repository rejects duplicates case-insensitively.
func (s *PriceService) Create(ctx context.Context, actor domain.Actor, input ports.CreatePriceInput) (*domain.Price, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrUnauthorized
	}
	if input.Category == "" {
		return nil, domain.NewValidationError("category", "category is required")
	}
	if input.Rate.IsNegative() {
		return nil, domain.NewValidationError("rate", "rate must not be negative")
	}

	price := &domain.Price{
		Category:  input.Category,
		Rate:      input.Rate.Round(2),
		ManagedBy: actor.ID,
	}

	created, err := s.prices.Create(ctx, price)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("price_id", created.ID).Str("category", created.Category).Msg("price created")
	return created, nil
}

func (s *PriceService) List(ctx context.Context, actor domain.Actor) ([]*domain.Price, error) {
	scope := domain.ResolveScope(actor, domain.KindPrice)
	if scope.Mode == domain.ScopeNone {
		return nil, domain.ErrUnauthorized
	}
	return s.prices.List(ctx, scope)
}

func (s *PriceService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdatePriceInput) (*domain.Price, error) {
	price, err := s.prices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(actor, price.ManagedBy) {
		return nil, domain.ErrUnauthorized
	}

	if input.Category != nil {
		if *input.Category == "" {
			return nil, domain.NewValidationError("category", "category is required")
		}
		price.Category = *input.Category
	}
	if input.Rate != nil {
		if input.Rate.IsNegative() {
			return nil, domain.NewValidationError("rate", "rate must not be negative")
		}
		price.Rate = input.Rate.Round(2)
	}

	if err := s.prices.Update(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

func (s *PriceService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	price, err := s.prices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModify(actor, price.ManagedBy) {
		return domain.ErrUnauthorized
	}
	return s.prices.Delete(ctx, id)
}
