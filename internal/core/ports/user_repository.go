package ports

import (
	"context"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns the users visible under scope. A ScopeNone scope yields
	// an empty result without touching storage.
	List(ctx context.Context, scope domain.Scope) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	// ClearManager nulls managed_by on every user managed by managerID.
	// Subordinates are never cascade-deleted.
	ClearManager(ctx context.Context, managerID string) error
}
