package ports

import (
	"context"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// ProjectRepository defines persistence operations for client projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, scope domain.Scope) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
