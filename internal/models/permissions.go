package models

// Verb names a CRUD action checked against the own/all capability matrix.
type Verb string

const (
	VerbCreate Verb = "create"
	VerbRead   Verb = "read"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"
)

// Role predicates. The hierarchy super_admin ⊇ admin ⊇ internal exists only
// here; the capability flags below are independent of it.

func (u *User) IsSuperAdmin() bool {
	return u.UserType.Title == TypeSuperAdmin
}

func (u *User) IsAdmin() bool {
	return u.UserType.Title == TypeAdmin || u.IsSuperAdmin()
}

func (u *User) IsInternal() bool {
	return u.UserType.Title == TypeInternal || u.IsAdmin()
}

// CanLogin is the composite liveness gate: the type must permit login and not
// be the blocked profile, and the user itself must be active, not blocked,
// and not soft-deleted.
func (u *User) CanLogin() bool {
	return u.UserType.CanLogin &&
		u.UserType.Title != TypeBlocked &&
		!u.IsBlocked &&
		u.IsActive &&
		!u.DeletedAt.Valid
}

// CanOwn reports whether the user's type carries the "own" capability for verb.
func (u *User) CanOwn(verb Verb) bool {
	switch verb {
	case VerbCreate:
		return u.UserType.CanCreateOwn
	case VerbRead:
		return u.UserType.CanReadOwn
	case VerbUpdate:
		return u.UserType.CanUpdateOwn
	case VerbDelete:
		return u.UserType.CanDeleteOwn
	}
	return false
}

// CanAll reports whether the user's type carries the "all" capability for verb.
func (u *User) CanAll(verb Verb) bool {
	switch verb {
	case VerbCreate:
		return u.UserType.CanCreateAll
	case VerbRead:
		return u.UserType.CanReadAll
	case VerbUpdate:
		return u.UserType.CanUpdateAll
	case VerbDelete:
		return u.UserType.CanDeleteAll
	}
	return false
}

// PermissionNames lists the wire names accepted by HasPermission, in the
// order they are reported back for /auth/verify-token.
var PermissionNames = []string{
	"can_create_own", "can_read_own", "can_update_own", "can_delete_own",
	"can_create_all", "can_read_all", "can_update_all", "can_delete_all",
}

// HasPermission resolves a wire permission name (e.g. "can_read_own") against
// the capability matrix. Unknown names are never granted.
func (u *User) HasPermission(name string) bool {
	switch name {
	case "can_create_own":
		return u.UserType.CanCreateOwn
	case "can_read_own":
		return u.UserType.CanReadOwn
	case "can_update_own":
		return u.UserType.CanUpdateOwn
	case "can_delete_own":
		return u.UserType.CanDeleteOwn
	case "can_create_all":
		return u.UserType.CanCreateAll
	case "can_read_all":
		return u.UserType.CanReadAll
	case "can_update_all":
		return u.UserType.CanUpdateAll
	case "can_delete_all":
		return u.UserType.CanDeleteAll
	}
	return false
}
