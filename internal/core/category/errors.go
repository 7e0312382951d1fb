// Copyright (c) 2026 Caboomlog. All rights reserved.

package category

import (
	"net/http"

	"github.com/caboomlog/backend/internal/platform/apperr"
)

// # Domain Errors

var (
	ErrTopicNotFound = apperr.New("TOPIC_NOT_FOUND",
		"Topic not found", http.StatusNotFound)

	ErrParentCategoryNotFound = apperr.New("PARENT_CATEGORY_NOT_FOUND",
		"Parent category not found", http.StatusNotFound)

	ErrCategoryNotFound = apperr.New("CATEGORY_NOT_FOUND",
		"Category not found", http.StatusNotFound)

	ErrCategoryNotOwnedByBlog = apperr.New("CATEGORY_NOT_OWNED_BY_BLOG",
		"Category does not belong to this blog", http.StatusBadRequest)

	ErrMaxDepthExceeded = apperr.New("MAX_DEPTH_EXCEEDED",
		"Categories cannot be nested more than 5 levels deep", http.StatusBadRequest)

	ErrPrivateParentPublicChild = apperr.New("PRIVATE_PARENT_PUBLIC_CHILD",
		"A public category cannot be created under a private category", http.StatusBadRequest)

	ErrCategoryLimitExceeded = apperr.New("CATEGORY_LIMIT_EXCEEDED",
		"A blog cannot have more than 200 categories", http.StatusBadRequest)

	ErrOrderSwapDepthMismatch = apperr.New("ORDER_SWAP_DEPTH_MISMATCH",
		"Only categories at the same depth can swap order", http.StatusBadRequest)
)
