package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

func TestProjectService_Create_StampsOwnership(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.Actor{ID: "adm_1", Role: domain.RoleAdmin}, ports.CreateProjectInput{
		Name:      "Spring Campaign",
		StartDate: day("2025-01-01"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.CreatedBy != "adm_1" || created.ManagedBy != "adm_1" {
		t.Fatalf("creator and owner must both be the acting admin, got %q/%q", created.CreatedBy, created.ManagedBy)
	}
}

func TestProjectService_Create_MemberDenied(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())
	_, err := svc.Create(context.Background(), domain.Actor{ID: "u1", Role: domain.RoleUser}, ports.CreateProjectInput{
		Name:      "nope",
		StartDate: day("2025-01-01"),
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProjectService_Create_EndBeforeStart(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), zerolog.Nop())
	end := day("2024-12-01")
	_, err := svc.Create(context.Background(), domain.Actor{ID: "adm_1", Role: domain.RoleAdmin}, ports.CreateProjectInput{
		Name:      "backwards",
		StartDate: day("2025-01-01"),
		EndDate:   &end,
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestProjectService_Get_ExistenceBeforeOwnership(t *testing.T) {
	repo := newStubProjectRepo()
	repo.add(&domain.Project{ID: "p1", Name: "secret", ManagedBy: "adm_2"})
	svc := NewProjectService(repo, zerolog.Nop())
	admin := domain.Actor{ID: "adm_1", Role: domain.RoleAdmin}

	// Missing record: not found, regardless of who asks.
	if _, err := svc.Get(context.Background(), admin, "ghost"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	// Existing record owned by someone else: a generic denial.
	if _, err := svc.Get(context.Background(), admin, "p1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProjectService_List_ScopedToOwner(t *testing.T) {
	repo := newStubProjectRepo()
	repo.add(&domain.Project{ID: "p1", ManagedBy: "adm_1"})
	repo.add(&domain.Project{ID: "p2", ManagedBy: "adm_2"})
	svc := NewProjectService(repo, zerolog.Nop())

	mine, err := svc.List(context.Background(), domain.Actor{ID: "adm_1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "p1" {
		t.Fatalf("admin must see only owned projects, got %d", len(mine))
	}

	all, err := svc.List(context.Background(), domain.Actor{ID: "root", Role: domain.RoleSuperAdmin})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("super admin must see everything, got %d", len(all))
	}

	if _, err := svc.List(context.Background(), domain.Actor{ID: "u1", Role: domain.RoleUser}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("members have no project list, got %v", err)
	}
}

func TestProjectService_Selectable(t *testing.T) {
	repo := newStubProjectRepo()
	repo.add(&domain.Project{ID: "p1", ManagedBy: "adm_1"})
	repo.add(&domain.Project{ID: "p2", ManagedBy: "adm_2"})
	svc := NewProjectService(repo, zerolog.Nop())

	// A managed member selects from their manager's projects.
	managed, err := svc.Selectable(context.Background(), domain.Actor{ID: "u1", Role: domain.RoleUser, ManagedBy: "adm_1"})
	if err != nil {
		t.Fatalf("Selectable returned error: %v", err)
	}
	if len(managed) != 1 || managed[0].ID != "p1" {
		t.Fatalf("member must see their manager's projects, got %d", len(managed))
	}

	// An unmanaged member selects from nothing, without an error.
	orphan, err := svc.Selectable(context.Background(), domain.Actor{ID: "u2", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Selectable returned error: %v", err)
	}
	if len(orphan) != 0 {
		t.Fatalf("unmanaged member must have no selectable projects, got %d", len(orphan))
	}
}

func TestProjectService_Update_OwnershipReassignmentIsSuperOnly(t *testing.T) {
	repo := newStubProjectRepo()
	repo.add(&domain.Project{ID: "p1", Name: "mine", CreatedBy: "adm_1", ManagedBy: "adm_1"})
	svc := NewProjectService(repo, zerolog.Nop())

	other := "adm_2"
	_, err := svc.Update(context.Background(), domain.Actor{ID: "adm_1", Role: domain.RoleAdmin}, "p1", ports.UpdateProjectInput{ManagedBy: &other})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("owner may not reassign ownership, got %v", err)
	}

	updated, err := svc.Update(context.Background(), domain.Actor{ID: "root", Role: domain.RoleSuperAdmin}, "p1", ports.UpdateProjectInput{ManagedBy: &other})
	if err != nil {
		t.Fatalf("super admin reassignment failed: %v", err)
	}
	if updated.ManagedBy != "adm_2" {
		t.Fatalf("ownership not reassigned")
	}
	if updated.CreatedBy != "adm_1" {
		t.Fatalf("created_by must never change, got %q", updated.CreatedBy)
	}
}

func TestProjectService_Update_OtherAdminDenied(t *testing.T) {
	repo := newStubProjectRepo()
	repo.add(&domain.Project{ID: "p1", ManagedBy: "adm_1"})
	svc := NewProjectService(repo, zerolog.Nop())

	name := "hijack"
	_, err := svc.Update(context.Background(), domain.Actor{ID: "adm_2", Role: domain.RoleAdmin}, "p1", ports.UpdateProjectInput{Name: &name})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProjectService_Delete(t *testing.T) {
	repo := newStubProjectRepo()
	repo.add(&domain.Project{ID: "p1", ManagedBy: "adm_1"})
	svc := NewProjectService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), domain.Actor{ID: "adm_2", Role: domain.RoleAdmin}, "p1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := svc.Delete(context.Background(), domain.Actor{ID: "adm_1", Role: domain.RoleAdmin}, "p1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}
