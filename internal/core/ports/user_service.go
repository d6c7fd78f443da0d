package ports

import (
	"context"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// CreateMemberInput is the administrative user-creation payload. The
// password is generated server-side and never accepted from the caller.
type CreateMemberInput struct {
	Username string
	Email    string
}

// UpdateUserInput carries optional field updates; nil means unchanged.
// Only a super admin may apply any of these.
type UpdateUserInput struct {
	Username  *string
	Email     *string
	Role      *domain.Role
	ManagedBy *string
}

// UserService covers profile access and team management.
type UserService interface {
	Profile(ctx context.Context, actor domain.Actor) (*domain.User, error)
	// ListTeam returns the users inside the actor's user scope.
	ListTeam(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
	// CreateMember creates a subordinate member managed by the acting
	// admin. The welcome notification is dispatched only after the user
	// write commits, and its failure never fails the creation.
	CreateMember(ctx context.Context, actor domain.Actor, input CreateMemberInput) (*domain.User, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes a user; subordinates keep existing with a null
	// manager.
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
