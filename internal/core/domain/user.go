package domain

import "time"

// Role is a closed, totally ordered enumeration: super_admin > admin > user.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleUser
}

// Level returns the rank of the role in the hierarchy. Unknown roles rank
// below everything.
func (r Role) Level() int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// Compare returns +1 when r outranks other, 0 when equal, -1 otherwise.
func (r Role) Compare(other Role) int {
	switch {
	case r.Level() > other.Level():
		return 1
	case r.Level() < other.Level():
		return -1
	default:
		return 0
	}
}

// User models a principal in the system. ManagedBy is the self-referential
// ownership edge: empty means the user has no manager (super admins,
// top-level admins, and self-registered members).
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ManagedBy    string    `json:"managed_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor returns the authorization view of the user: the value threaded
// through every scope and ownership decision.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, ManagedBy: u.ManagedBy}
}

// Actor is the authenticated principal behind a request. It is passed
// explicitly into every service call so authorization stays testable
// without a simulated session.
type Actor struct {
	ID        string
	Role      Role
	ManagedBy string
}

// IsManagerOf reports whether subject sits directly under the actor in the
// ownership chain.
func (a Actor) IsManagerOf(subject *User) bool {
	return subject.ManagedBy != "" && subject.ManagedBy == a.ID
}

// Owns reports whether the actor is the owner recorded on an entity's
// managed_by field.
func (a Actor) Owns(managedBy string) bool {
	return managedBy != "" && managedBy == a.ID
}

// ValidManagerFor reports whether a user with managerRole may manage a user
// with subjectRole. The manager must sit strictly higher in the hierarchy.
func ValidManagerFor(subjectRole, managerRole Role) bool {
	return managerRole.Compare(subjectRole) > 0
}
