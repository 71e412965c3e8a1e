package domain

import "testing"

func TestHasPermission_StandardUser(t *testing.T) {
	granted := []Permission{
		PermViewUserProfile,
		PermCreateBook,
		PermViewBook,
		PermEditOwnBook,
		PermDeleteOwnBook,
		PermCreateReadingEntry,
		PermViewReadingEntry,
		PermViewOwnReadingEntries,
		PermEditOwnReadingEntry,
		PermDeleteOwnReadingEntry,
	}
	for _, p := range granted {
		if !HasPermission(RoleStandardUser, p) {
			t.Errorf("standard_user should have %q", p)
		}
	}

	denied := []Permission{
		PermManageUsers,
		PermActivateUser,
		PermDeactivateUser,
		PermViewAllUsers,
		PermEditBook,
		PermDeleteBook,
		PermEditReadingEntry,
		PermDeleteReadingEntry,
	}
	for _, p := range denied {
		if HasPermission(RoleStandardUser, p) {
			t.Errorf("standard_user should NOT have %q", p)
		}
	}
}

func TestHasPermission_AdminHasEverything(t *testing.T) {
	all := []Permission{
		PermManageUsers, PermActivateUser, PermDeactivateUser, PermViewAllUsers,
		PermViewUserProfile,
		PermCreateBook, PermViewBook, PermEditBook, PermEditOwnBook, PermDeleteBook, PermDeleteOwnBook,
		PermCreateReadingEntry, PermViewReadingEntry, PermViewOwnReadingEntries,
		PermEditReadingEntry, PermEditOwnReadingEntry, PermDeleteReadingEntry, PermDeleteOwnReadingEntry,
	}
	for _, p := range all {
		if !HasPermission(RoleAdmin, p) {
			t.Errorf("admin should have %q", p)
		}
	}
}

func TestHasPermission_UnknownRoleDeniedByDefault(t *testing.T) {
	if HasPermission(Role("superuser"), PermViewBook) {
		t.Error("unknown role must resolve to an empty permission set")
	}
	if len(PermissionsFor(Role("superuser"))) != 0 {
		t.Error("PermissionsFor must return an empty set for unknown roles")
	}
}

func TestHasPermission_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if !HasPermission(RoleAdmin, PermManageUsers) {
			t.Fatal("lookup must be deterministic")
		}
		if HasPermission(RoleStandardUser, PermManageUsers) {
			t.Fatal("lookup must be deterministic")
		}
	}
}

func TestPermissionsFor_NonEmptyForKnownRoles(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleStandardUser} {
		if len(PermissionsFor(role)) == 0 {
			t.Errorf("role %q must have a non-empty permission set", role)
		}
	}
}
