package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// --- In-memory repositories shared by the service tests ---

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u)
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("usr_%d", r.nextID)
	}
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, scope domain.Scope) ([]*domain.User, error) {
	out := make([]*domain.User, 0)
	for _, u := range r.users {
		if scope.AllowsUser(u) {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) ClearManager(_ context.Context, managerID string) error {
	for _, u := range r.users {
		if u.ManagedBy == managerID {
			u.ManagedBy = ""
		}
	}
	return nil
}

type stubProjectRepo struct {
	projects map[string]*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProjectRepo) add(p *domain.Project) *domain.Project {
	r.projects[p.ID] = cloneProject(p)
	return cloneProject(p)
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	copy := cloneProject(p)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("prj_%d", r.nextID)
	}
	r.projects[copy.ID] = cloneProject(copy)
	return copy, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		return cloneProject(p), nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context, scope domain.Scope) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0)
	for _, p := range r.projects {
		if scope.AllowsOwned(p.ManagedBy) {
			out = append(out, cloneProject(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.projects[p.ID] = cloneProject(p)
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

type stubPriceRepo struct {
	prices map[string]*domain.Price
	nextID int
}

func newStubPriceRepo() *stubPriceRepo {
	return &stubPriceRepo{prices: make(map[string]*domain.Price)}
}

func clonePrice(p *domain.Price) *domain.Price {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPriceRepo) add(p *domain.Price) *domain.Price {
	r.prices[p.ID] = clonePrice(p)
	return clonePrice(p)
}

func (r *stubPriceRepo) Create(_ context.Context, p *domain.Price) (*domain.Price, error) {
	for _, existing := range r.prices {
		if existing.ManagedBy == p.ManagedBy && existing.CategoryKey() == p.CategoryKey() {
			return nil, domain.ErrDuplicateCategory
		}
	}
	copy := clonePrice(p)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("prc_%d", r.nextID)
	}
	r.prices[copy.ID] = clonePrice(copy)
	return copy, nil
}

func (r *stubPriceRepo) FindByID(_ context.Context, id string) (*domain.Price, error) {
	if p, ok := r.prices[id]; ok {
		return clonePrice(p), nil
	}
	return nil, domain.ErrPriceNotFound
}

func (r *stubPriceRepo) List(_ context.Context, scope domain.Scope) ([]*domain.Price, error) {
	out := make([]*domain.Price, 0)
	for _, p := range r.prices {
		if scope.AllowsOwned(p.ManagedBy) {
			out = append(out, clonePrice(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPriceRepo) Update(_ context.Context, p *domain.Price) error {
	for id, existing := range r.prices {
		if id != p.ID && existing.ManagedBy == p.ManagedBy && existing.CategoryKey() == p.CategoryKey() {
			return domain.ErrDuplicateCategory
		}
	}
	if _, ok := r.prices[p.ID]; !ok {
		return domain.ErrPriceNotFound
	}
	r.prices[p.ID] = clonePrice(p)
	return nil
}

func (r *stubPriceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.prices[id]; !ok {
		return domain.ErrPriceNotFound
	}
	delete(r.prices, id)
	return nil
}

type stubWorkRepo struct {
	entries  []*domain.WorkEntry
	projects *stubProjectRepo
	nextID   int
}

func newStubWorkRepo(projects *stubProjectRepo) *stubWorkRepo {
	return &stubWorkRepo{projects: projects}
}

func cloneEntry(e *domain.WorkEntry) *domain.WorkEntry {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubWorkRepo) Create(_ context.Context, e *domain.WorkEntry) (*domain.WorkEntry, error) {
	copy := cloneEntry(e)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("ent_%d", r.nextID)
	}
	r.entries = append(r.entries, cloneEntry(copy))
	return copy, nil
}

func (r *stubWorkRepo) projectOwner(projectID string) string {
	if projectID == "" || r.projects == nil {
		return ""
	}
	if p, ok := r.projects.projects[projectID]; ok {
		return p.ManagedBy
	}
	return ""
}

func (r *stubWorkRepo) List(_ context.Context, scope domain.Scope) ([]*domain.WorkEntry, error) {
	out := make([]*domain.WorkEntry, 0)
	for _, e := range r.entries {
		if scope.AllowsWorkEntry(e, r.projectOwner(e.ProjectID)) {
			out = append(out, cloneEntry(e))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *stubWorkRepo) ListForProject(_ context.Context, projectID string) ([]*domain.WorkEntry, error) {
	out := make([]*domain.WorkEntry, 0)
	for _, e := range r.entries {
		if e.ProjectID == projectID {
			out = append(out, cloneEntry(e))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// stubEnqueuer records enqueued welcome notifications.
type stubEnqueuer struct {
	sent []ports.WelcomeNotification
}

func (s *stubEnqueuer) Enqueue(n ports.WelcomeNotification) {
	s.sent = append(s.sent, n)
}

// stubRenderer captures the inputs of the last Render call.
type stubRenderer struct {
	project *domain.Project
	items   []ports.LineItem
	totals  ports.Totals
	err     error
}

func (s *stubRenderer) Render(project *domain.Project, items []ports.LineItem, totals ports.Totals) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.project = project
	s.items = items
	s.totals = totals
	return []byte("xlsx-bytes"), nil
}
