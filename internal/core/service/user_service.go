package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// UserService implements profile access and team management.
type UserService struct {
	users   ports.UserRepository
	welcome ports.WelcomeEnqueuer
	log     zerolog.Logger
}

func NewUserService(users ports.UserRepository, welcome ports.WelcomeEnqueuer, log zerolog.Logger) *UserService {
	return &UserService{users: users, welcome: welcome, log: log}
}

func (s *UserService) Profile(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	return s.users.FindByID(ctx, actor.ID)
}

// ListTeam returns the users inside the actor's user scope. Members have no
// user-list access at all.
func (s *UserService) ListTeam(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	scope := domain.ResolveScope(actor, domain.KindUser)
	if scope.Mode == domain.ScopeNone {
		return nil, domain.ErrUnauthorized
	}
	return s.users.List(ctx, scope)
}

// CreateMember creates a subordinate member for the acting admin. The role
// and manager are forced (a caller-supplied role is never trusted) and
// the initial password is generated here, never accepted over the wire.
// The welcome notification is enqueued only after the write commits; it is
// best-effort and its failure never rolls back or fails the creation.
func (s *UserService) CreateMember(ctx context.Context, actor domain.Actor, input ports.CreateMemberInput) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrUnauthorized
	}
	if input.Username == "" || input.Email == "" {
		return nil, domain.NewValidationError("username", "username and email are required")
	}

	password := generatePassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		ManagedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("managed_by", actor.ID).Msg("team member created")

	if s.welcome != nil {
		s.welcome.Enqueue(ports.WelcomeNotification{
			Email:        created.Email,
			Username:     created.Username,
			TempPassword: password,
		})
	}

	return created, nil
}

// Update mutates a user. Only super admins may change users at all; role
// and manager are immutable to everyone else, including the owning admin.
func (s *UserService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domain.NewValidationError("role", "unknown role")
		}
		user.Role = *input.Role
	}
	if input.ManagedBy != nil {
		if *input.ManagedBy == "" {
			user.ManagedBy = ""
		} else {
			manager, err := s.users.FindByID(ctx, *input.ManagedBy)
			if err != nil {
				return nil, domain.NewValidationError("managed_by", "manager does not exist")
			}
			if !domain.ValidManagerFor(user.Role, manager.Role) {
				return nil, domain.NewValidationError("managed_by", "manager must outrank the managed user")
			}
			user.ManagedBy = manager.ID
		}
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user and nulls the manager reference on any
// subordinates. Subordinates survive their manager's removal.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if actor.Role != domain.RoleSuperAdmin {
		return domain.ErrUnauthorized
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.users.ClearManager(ctx, id); err != nil {
		s.log.Error().Err(err).Str("manager_id", id).Msg("failed to clear manager on subordinates")
		return err
	}
	return nil
}

// generatePassword returns a random 16-hex-character initial password.
func generatePassword() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%X", b)
}
