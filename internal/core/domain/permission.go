package domain

// Permission is an atomic capability token gating one action. The set is
// flat; there is no hierarchy between permissions.
type Permission string

const (
	// User management (admin only).
	PermManageUsers    Permission = "manage_users"
	PermActivateUser   Permission = "activate_user"
	PermDeactivateUser Permission = "deactivate_user"
	PermViewAllUsers   Permission = "view_all_users"

	// User viewing.
	PermViewUserProfile Permission = "view_user_profile"

	// Books.
	PermCreateBook    Permission = "create_book"
	PermViewBook      Permission = "view_book"
	PermEditBook      Permission = "edit_book"
	PermEditOwnBook   Permission = "edit_own_book"
	PermDeleteBook    Permission = "delete_book"
	PermDeleteOwnBook Permission = "delete_own_book"

	// Reading entries.
	PermCreateReadingEntry    Permission = "create_reading_entry"
	PermViewReadingEntry      Permission = "view_reading_entry"
	PermViewOwnReadingEntries Permission = "view_own_reading_entries"
	PermEditReadingEntry      Permission = "edit_reading_entry"
	PermEditOwnReadingEntry   Permission = "edit_own_reading_entry"
	PermDeleteReadingEntry    Permission = "delete_reading_entry"
	PermDeleteOwnReadingEntry Permission = "delete_own_reading_entry"
)

// rolePermissions is the fixed role-to-permission grant table. Unknown roles
// resolve to an empty set (deny by default).
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleStandardUser: permSet(
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
	),
	RoleAdmin: permSet(
		PermManageUsers,
		PermActivateUser,
		PermDeactivateUser,
		PermViewAllUsers,
		PermViewUserProfile,
		PermCreateBook,
		PermViewBook,
		PermEditBook,
		PermEditOwnBook,
		PermDeleteBook,
		PermDeleteOwnBook,
		PermCreateReadingEntry,
		PermViewReadingEntry,
		PermViewOwnReadingEntries,
		PermEditReadingEntry,
		PermEditOwnReadingEntry,
		PermDeleteReadingEntry,
		PermDeleteOwnReadingEntry,
	),
}

func permSet(perms ...Permission) map[Permission]struct{} {
	s := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// HasPermission reports whether role grants permission. Pure lookup, no I/O.
func HasPermission(role Role, permission Permission) bool {
	_, ok := rolePermissions[role][permission]
	return ok
}

// PermissionsFor returns the set of permissions granted to role. An unknown
// role yields an empty slice, never an error.
func PermissionsFor(role Role) []Permission {
	grants := rolePermissions[role]
	perms := make([]Permission, 0, len(grants))
	for p := range grants {
		perms = append(perms, p)
	}
	return perms
}
