package ports

import (
	"context"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// RegisterInput carries the only three fields self-registration accepts.
// Role is deliberately absent: a self-registered user is always a member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService implements self-registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login authenticates by email and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
