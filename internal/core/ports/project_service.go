package ports

import (
	"context"
	"time"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// CreateProjectInput carries the data for a new client project. Ownership
// fields are stamped by the service, never taken from the caller.
type CreateProjectInput struct {
	Name          string
	StartDate     time.Time
	EndDate       *time.Time
	AttachmentURL string
}

// UpdateProjectInput carries optional field updates; nil means unchanged.
// ManagedBy is honored only for super admins.
type UpdateProjectInput struct {
	Name          *string
	StartDate     *time.Time
	EndDate       *time.Time
	AttachmentURL *string
	ManagedBy     *string
}

// ProjectService covers project CRUD under ownership scoping.
type ProjectService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Project, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Project, error)
	// Selectable returns the projects a member may log work against: those
	// owned by their manager. Admins see their own, super admins all.
	Selectable(ctx context.Context, actor domain.Actor) ([]*domain.Project, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
