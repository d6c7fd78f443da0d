package domain

// EntityKind names a scopeable entity type.
type EntityKind int

const (
	KindUser EntityKind = iota
	KindProject
	KindPrice
	KindWorkEntry
)

// ScopeMode is the shape of the filter an actor's role imposes on a kind.
type ScopeMode int

const (
	// ScopeNone denies access to every record of the kind.
	ScopeNone ScopeMode = iota
	// ScopeAll grants access to every record of the kind.
	ScopeAll
	// ScopeOwned restricts to records whose managed_by equals OwnerID.
	ScopeOwned
	// ScopeOwnEntries restricts work entries to those logged by UserID.
	ScopeOwnEntries
	// ScopeTeamProjects restricts work entries to those whose project is
	// owned by OwnerID.
	ScopeTeamProjects
)

// Scope bounds the records of one entity kind visible and mutable by an
// actor. The same value drives list queries (translated into storage
// filters by the repositories) and in-memory single-entity checks.
type Scope struct {
	Mode    ScopeMode
	OwnerID string
	UserID  string
}

// ResolveScope returns the filter bound for actor over the given entity
// kind. The rules form a closed table: any change here changes every read
// and write path at once.
func ResolveScope(actor Actor, kind EntityKind) Scope {
	switch actor.Role {
	case RoleSuperAdmin:
		return Scope{Mode: ScopeAll}

	case RoleAdmin:
		switch kind {
		case KindUser, KindProject, KindPrice:
			return Scope{Mode: ScopeOwned, OwnerID: actor.ID}
		case KindWorkEntry:
			return Scope{Mode: ScopeTeamProjects, OwnerID: actor.ID}
		}

	case RoleUser:
		if kind == KindWorkEntry {
			return Scope{Mode: ScopeOwnEntries, UserID: actor.ID}
		}
	}
	return Scope{Mode: ScopeNone}
}

// AllowsUser reports whether u falls inside a user scope.
func (s Scope) AllowsUser(u *User) bool {
	switch s.Mode {
	case ScopeAll:
		return true
	case ScopeOwned:
		return u.ManagedBy != "" && u.ManagedBy == s.OwnerID
	default:
		return false
	}
}

// AllowsOwned reports whether an entity with the given managed_by falls
// inside a project or price scope.
func (s Scope) AllowsOwned(managedBy string) bool {
	switch s.Mode {
	case ScopeAll:
		return true
	case ScopeOwned:
		return managedBy != "" && managedBy == s.OwnerID
	default:
		return false
	}
}

// AllowsWorkEntry reports whether e falls inside a work-entry scope.
// projectOwner is the managed_by of the entry's project, or empty when the
// entry has no project.
func (s Scope) AllowsWorkEntry(e *WorkEntry, projectOwner string) bool {
	switch s.Mode {
	case ScopeAll:
		return true
	case ScopeOwnEntries:
		return e.UserID == s.UserID
	case ScopeTeamProjects:
		return projectOwner != "" && projectOwner == s.OwnerID
	default:
		return false
	}
}

// CanModify is the degenerate single-record form of the scope predicate
// used on every edit and delete path: super admins may touch anything,
// everyone else only what they own.
func CanModify(actor Actor, managedBy string) bool {
	return actor.Role == RoleSuperAdmin || actor.Owns(managedBy)
}
