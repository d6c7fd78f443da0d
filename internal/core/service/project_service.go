package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// ProjectService implements project CRUD under ownership scoping.
type ProjectService struct {
	projects ports.ProjectRepository
	log      zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, log: log}
}

// Create stamps the acting admin as both creator and owner. CreatedBy is
// written exactly once here and never again.
func (s *ProjectService) Create(ctx context.Context, actor domain.Actor, input ports.CreateProjectInput) (*domain.Project, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrUnauthorized
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, domain.NewValidationError("end_date", "end date precedes start date")
	}

	project := &domain.Project{
		Name:          input.Name,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		AttachmentURL: input.AttachmentURL,
		CreatedBy:     actor.ID,
		ManagedBy:     actor.ID,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("managed_by", actor.ID).Msg("project created")
	return created, nil
}

// Get fetches a single project: existence first (404), then ownership
// (generic denial). The same order applies on every single-entity path.
func (s *ProjectService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(actor, project.ManagedBy) {
		return nil, domain.ErrUnauthorized
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
	scope := domain.ResolveScope(actor, domain.KindProject)
	if scope.Mode == domain.ScopeNone {
		return nil, domain.ErrUnauthorized
	}
	return s.projects.List(ctx, scope)
}

// Selectable returns the projects an actor may attach work entries to. A
// member sees the projects owned by their manager; a member with no
// manager can select nothing.
func (s *ProjectService) Selectable(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
	switch actor.Role {
	case domain.RoleSuperAdmin:
		return s.projects.List(ctx, domain.Scope{Mode: domain.ScopeAll})
	case domain.RoleAdmin:
		return s.projects.List(ctx, domain.Scope{Mode: domain.ScopeOwned, OwnerID: actor.ID})
	case domain.RoleUser:
		if actor.ManagedBy == "" {
			return []*domain.Project{}, nil
		}
		return s.projects.List(ctx, domain.Scope{Mode: domain.ScopeOwned, OwnerID: actor.ManagedBy})
	default:
		return nil, domain.ErrUnauthorized
	}
}

// Update applies field changes. Ownership reassignment is a super-admin
// operation; CreatedBy is untouchable.
func (s *ProjectService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(actor, project.ManagedBy) {
		return nil, domain.ErrUnauthorized
	}

	if input.ManagedBy != nil {
		if actor.Role != domain.RoleSuperAdmin {
			return nil, domain.ErrUnauthorized
		}
		project.ManagedBy = *input.ManagedBy
	}
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	if input.AttachmentURL != nil {
		project.AttachmentURL = *input.AttachmentURL
	}
	if project.EndDate != nil && project.EndDate.Before(project.StartDate) {
		return nil, domain.NewValidationError("end_date", "end date precedes start date")
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModify(actor, project.ManagedBy) {
		return domain.ErrUnauthorized
	}
	return s.projects.Delete(ctx, id)
}
