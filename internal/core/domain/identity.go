package domain

import "time"

// Identity is the verified content of a bearer token.
type Identity struct {
	SubjectID uint64
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthorizeRole permits id only when its role equals one of required.
// A nil identity is unauthenticated, never forbidden.
func AuthorizeRole(id *Identity, required ...Role) error {
	if id == nil {
		return ErrUnauthenticated
	}
	for _, r := range required {
		if id.Role == r {
			return nil
		}
	}
	return ErrForbidden
}

// AuthorizeOwnerOrAdmin permits the owner of a resource or any admin.
func AuthorizeOwnerOrAdmin(id *Identity, ownerID uint64) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.Role == RoleAdmin || id.SubjectID == ownerID {
		return nil
	}
	return ErrForbidden
}
