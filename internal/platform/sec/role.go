// Copyright (c) 2026 Caboomlog. All rights reserved.

package sec

// # Blog Roles

// BlogRole is a user's role within a single blog, as stored in blog.membermapping.
type BlogRole string

const (
	// Owns the blog and manages its categories.
	RoleOwner BlogRole = "ROLE_OWNER"

	// Writes posts but cannot change the blog's structure.
	RoleMember BlogRole = "ROLE_MEMBER"
)

// AtLeast reports whether r grants every permission of target.
func (r BlogRole) AtLeast(target BlogRole) bool {
	return r.level() >= target.level()
}

func (r BlogRole) level() int {
	switch r {
	case RoleOwner:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}

// Valid reports whether r is a known role.
func (r BlogRole) Valid() bool {
	return r.level() > 0
}
