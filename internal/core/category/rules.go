// Copyright (c) 2026 Caboomlog. All rights reserved.

package category

// # Placement Rules

// placement is the depth and sibling order computed for a new category.
type placement struct {
	depth int
	order int
}

// checkCapacity fails once a blog holds [MaxCategoriesPerBlog] categories.
func checkCapacity(count int) error {
	if count >= MaxCategoriesPerBlog {
		return ErrCategoryLimitExceeded
	}
	return nil
}

// checkParent applies the parent rules in order: same blog, depth ceiling, then
// the visibility rule that forbids a public child under a private parent.
func checkParent(parent *Category, blogID string, requestedPublic bool) error {
	if parent.BlogID != blogID {
		return ErrCategoryNotOwnedByBlog
	}

	if parent.Depth >= MaxDepth {
		return ErrMaxDepthExceeded
	}

	if !parent.IsPublic && requestedPublic {
		return ErrPrivateParentPublicChild
	}

	return nil
}

// placeChild positions a new category after the parent's existing children.
func placeChild(parent *Category, siblingCount int) placement {
	return placement{depth: parent.Depth + 1, order: siblingCount + 1}
}

// placeRoot positions a new category after the blog's existing roots.
func placeRoot(rootCount int) placement {
	return placement{depth: 1, order: rootCount + 1}
}

// checkSwap allows an order swap only between categories at the same depth.
// Parents are not compared.
func checkSwap(first, second *Category) error {
	if first.Depth != second.Depth {
		return ErrOrderSwapDepthMismatch
	}
	return nil
}
