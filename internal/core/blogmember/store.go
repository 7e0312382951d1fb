// Copyright (c) 2026 Caboomlog. All rights reserved.

package blogmember

import "context"

// Repository defines the data access contract for blog memberships.
type Repository interface {

	/*
		FindMember retrieves the membership of a user in a blog.

		Returns:
		  - *Member: The membership row
		  - error: dberr.ErrNotFound if the user is not a member
	*/
	FindMember(context context.Context, blogID, userID string) (*Member, error)
}
