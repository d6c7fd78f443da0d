package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// WorkEntryService implements work logging and scoped reads.
type WorkEntryService struct {
	entries  ports.WorkEntryRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	prices   ports.PriceRepository
	log      zerolog.Logger
}

func NewWorkEntryService(
	entries ports.WorkEntryRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	prices ports.PriceRepository,
	log zerolog.Logger,
) *WorkEntryService {
	return &WorkEntryService{
		entries:  entries,
		projects: projects,
		users:    users,
		prices:   prices,
		log:      log,
	}
}

// Create logs work for the acting member. A project, when given, must be
// selectable for the actor. For a member that means owned by their
// manager, so an unmanaged member can only log unbilled work.
func (s *WorkEntryService) Create(ctx context.Context, actor domain.Actor, input ports.CreateWorkEntryInput) (*domain.WorkEntry, error) {
	if actor.Role != domain.RoleUser {
		return nil, domain.ErrUnauthorized
	}
	if input.Category == "" {
		return nil, domain.NewValidationError("category", "category is required")
	}
	if input.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "quantity must be positive")
	}
	if input.Date.IsZero() {
		return nil, domain.NewValidationError("date", "date is required")
	}

	if input.ProjectID != "" {
		project, err := s.projects.FindByID(ctx, input.ProjectID)
		if err != nil {
			return nil, domain.NewValidationError("project", "project does not exist")
		}
		if actor.ManagedBy == "" || project.ManagedBy != actor.ManagedBy {
			return nil, domain.NewValidationError("project", "project is not selectable for this user")
		}
	}

	entry := &domain.WorkEntry{
		UserID:    actor.ID,
		ProjectID: input.ProjectID,
		Category:  input.Category,
		Quantity:  input.Quantity,
		Date:      input.Date,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("entry_id", created.ID).Str("user_id", actor.ID).Int("quantity", created.Quantity).Msg("work entry logged")
	return created, nil
}

// List returns the entries inside the actor's work-entry scope, decorated
// with display names, newest first.
func (s *WorkEntryService) List(ctx context.Context, actor domain.Actor) ([]ports.WorkEntryView, error) {
	scope := domain.ResolveScope(actor, domain.KindWorkEntry)
	if scope.Mode == domain.ScopeNone {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, entries)
}

// Dashboard bundles the role-filtered entries, rate lookup, and projects
// behind the admin dashboard.
func (s *WorkEntryService) Dashboard(ctx context.Context, actor domain.Actor) (*ports.DashboardResult, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.List(ctx, domain.ResolveScope(actor, domain.KindWorkEntry))
	if err != nil {
		return nil, err
	}
	views, err := s.decorate(ctx, entries)
	if err != nil {
		return nil, err
	}

	prices, err := s.prices.List(ctx, domain.ResolveScope(actor, domain.KindPrice))
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.List(ctx, domain.ResolveScope(actor, domain.KindProject))
	if err != nil {
		return nil, err
	}

	return &ports.DashboardResult{
		Entries:  views,
		Rates:    BuildRateTable(prices),
		Projects: projects,
	}, nil
}

// decorate resolves usernames and project names with per-call caches.
func (s *WorkEntryService) decorate(ctx context.Context, entries []*domain.WorkEntry) ([]ports.WorkEntryView, error) {
	usernames := make(map[string]string)
	projectNames := make(map[string]string)

	views := make([]ports.WorkEntryView, 0, len(entries))
	for _, e := range entries {
		view := ports.WorkEntryView{Entry: e}

		if name, ok := usernames[e.UserID]; ok {
			view.Username = name
		} else if user, err := s.users.FindByID(ctx, e.UserID); err == nil {
			usernames[e.UserID] = user.Username
			view.Username = user.Username
		}

		if e.ProjectID != "" {
			if name, ok := projectNames[e.ProjectID]; ok {
				view.ProjectName = name
			} else if project, err := s.projects.FindByID(ctx, e.ProjectID); err == nil {
				projectNames[e.ProjectID] = project.Name
				view.ProjectName = project.Name
			}
		}

		views = append(views, view)
	}
	return views, nil
}
