package domain

import "testing"

func TestResolveScope_SuperAdmin(t *testing.T) {
	actor := Actor{ID: "root", Role: RoleSuperAdmin}
	for _, kind := range []EntityKind{KindUser, KindProject, KindPrice, KindWorkEntry} {
		scope := ResolveScope(actor, kind)
		if scope.Mode != ScopeAll {
			t.Fatalf("kind %d: expected ScopeAll, got %d", kind, scope.Mode)
		}
	}
}

func TestResolveScope_Admin(t *testing.T) {
	actor := Actor{ID: "adm_1", Role: RoleAdmin}

	for _, kind := range []EntityKind{KindUser, KindProject, KindPrice} {
		scope := ResolveScope(actor, kind)
		if scope.Mode != ScopeOwned {
			t.Fatalf("kind %d: expected ScopeOwned, got %d", kind, scope.Mode)
		}
		if scope.OwnerID != "adm_1" {
			t.Fatalf("kind %d: expected owner adm_1, got %q", kind, scope.OwnerID)
		}
	}

	scope := ResolveScope(actor, KindWorkEntry)
	if scope.Mode != ScopeTeamProjects || scope.OwnerID != "adm_1" {
		t.Fatalf("work entries: expected ScopeTeamProjects/adm_1, got %d/%q", scope.Mode, scope.OwnerID)
	}
}

func TestResolveScope_Member(t *testing.T) {
	actor := Actor{ID: "usr_1", Role: RoleUser, ManagedBy: "adm_1"}

	scope := ResolveScope(actor, KindWorkEntry)
	if scope.Mode != ScopeOwnEntries || scope.UserID != "usr_1" {
		t.Fatalf("work entries: expected ScopeOwnEntries/usr_1, got %d/%q", scope.Mode, scope.UserID)
	}

	for _, kind := range []EntityKind{KindUser, KindProject, KindPrice} {
		if ResolveScope(actor, kind).Mode != ScopeNone {
			t.Fatalf("kind %d: expected ScopeNone for member", kind)
		}
	}
}

func TestResolveScope_UnknownRole(t *testing.T) {
	actor := Actor{ID: "x", Role: Role("ghost")}
	for _, kind := range []EntityKind{KindUser, KindProject, KindPrice, KindWorkEntry} {
		if ResolveScope(actor, kind).Mode != ScopeNone {
			t.Fatalf("kind %d: unknown role must resolve to ScopeNone", kind)
		}
	}
}

func TestScope_AllowsUser(t *testing.T) {
	owned := Scope{Mode: ScopeOwned, OwnerID: "adm_1"}

	if !owned.AllowsUser(&User{ID: "u1", ManagedBy: "adm_1"}) {
		t.Fatalf("subordinate should be visible to owner")
	}
	if owned.AllowsUser(&User{ID: "u2", ManagedBy: "adm_2"}) {
		t.Fatalf("another admin's subordinate must be invisible")
	}
	// An unmanaged user matches no ownership filter, even when OwnerID is
	// accidentally empty too.
	if (Scope{Mode: ScopeOwned}).AllowsUser(&User{ID: "u3"}) {
		t.Fatalf("empty managed_by must never match an ownership scope")
	}
	if !(Scope{Mode: ScopeAll}).AllowsUser(&User{ID: "u3"}) {
		t.Fatalf("ScopeAll admits everyone")
	}
}

func TestScope_AllowsWorkEntry(t *testing.T) {
	own := Scope{Mode: ScopeOwnEntries, UserID: "usr_1"}
	team := Scope{Mode: ScopeTeamProjects, OwnerID: "adm_1"}

	mine := &WorkEntry{ID: "e1", UserID: "usr_1", ProjectID: "p1"}
	theirs := &WorkEntry{ID: "e2", UserID: "usr_2", ProjectID: "p1"}

	// Two members on the same project still only see their own entries.
	if !own.AllowsWorkEntry(mine, "adm_1") {
		t.Fatalf("member must see their own entry")
	}
	if own.AllowsWorkEntry(theirs, "adm_1") {
		t.Fatalf("member must not see a teammate's entry, shared project or not")
	}

	// The admin sees both because the project is theirs.
	if !team.AllowsWorkEntry(mine, "adm_1") || !team.AllowsWorkEntry(theirs, "adm_1") {
		t.Fatalf("admin must see all entries on an owned project")
	}
	if team.AllowsWorkEntry(mine, "adm_2") {
		t.Fatalf("admin must not see entries on another admin's project")
	}
	if team.AllowsWorkEntry(&WorkEntry{ID: "e3", UserID: "usr_1"}, "") {
		t.Fatalf("unbilled entries are invisible to the team scope")
	}
}

func TestCanModify(t *testing.T) {
	super := Actor{ID: "root", Role: RoleSuperAdmin}
	admin := Actor{ID: "adm_1", Role: RoleAdmin}

	if !CanModify(super, "adm_2") {
		t.Fatalf("super admin modifies anything")
	}
	if !CanModify(admin, "adm_1") {
		t.Fatalf("owner modifies their own records")
	}
	if CanModify(admin, "adm_2") {
		t.Fatalf("admin must not modify another admin's records")
	}
	if CanModify(admin, "") {
		t.Fatalf("unowned records are modifiable only by super admins")
	}
}

func TestRole_Hierarchy(t *testing.T) {
	if RoleSuperAdmin.Compare(RoleAdmin) != 1 || RoleAdmin.Compare(RoleUser) != 1 {
		t.Fatalf("hierarchy order broken")
	}
	if RoleAdmin.Compare(RoleAdmin) != 0 {
		t.Fatalf("equal roles must compare 0")
	}
	if RoleUser.Compare(RoleSuperAdmin) != -1 {
		t.Fatalf("user must rank below super admin")
	}

	if !ValidManagerFor(RoleUser, RoleAdmin) || !ValidManagerFor(RoleAdmin, RoleSuperAdmin) {
		t.Fatalf("strictly higher roles are valid managers")
	}
	if ValidManagerFor(RoleAdmin, RoleAdmin) {
		t.Fatalf("a peer is not a valid manager")
	}
	if ValidManagerFor(RoleSuperAdmin, RoleAdmin) {
		t.Fatalf("a lower role is not a valid manager")
	}
}
