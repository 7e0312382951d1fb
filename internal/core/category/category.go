// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package category manages the category hierarchy of a blog.

Every blog owns a forest of categories nested at most [MaxDepth] levels deep.
Categories are ordered among their siblings and are either public or private.
A public category can never be created under a private parent, and turning a
category private turns its whole subtree private in one transaction.

# Core Responsibility

  - Storage: categories reference their parent by ID only ([Category.ParentID]).
  - Views: [BuildTree] assembles an immutable [Node] forest on every read.
  - Rules: [Service] enforces the depth limit, the per-blog cap and the visibility rules.

Callers must have checked that the acting user owns the blog. The HTTP layer does this
with the blog owner gate before any owner route runs.
*/
package category

import "time"

// # Limits

const (
	// MaxDepth is the deepest level a category may occupy. Roots are depth 1.
	MaxDepth = 5

	// MaxCategoriesPerBlog caps the number of categories a single blog may own.
	MaxCategoriesPerBlog = 200

	// MaxNameLength is the longest category name, counted in runes.
	MaxNameLength = 50
)

// # Core Entities

// Category is one persisted node of a blog's hierarchy.
type Category struct {
	ID        string    `json:"category_id"` // UUIDv7
	BlogID    string    `json:"blog_id"`     // blog fid, e.g. "caboom"
	ParentID  *string   `json:"parent_id"`   // nil for roots
	TopicID   int       `json:"topic_id"`
	TopicName string    `json:"topic_name"` // Denormalized from the topic catalog
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsPublic  bool      `json:"is_public"`
	Order     int       `json:"order"`
	Depth     int       `json:"depth"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsRoot reports whether the category has no parent.
func (category *Category) IsRoot() bool {
	return category.ParentID == nil
}

// CreateInput carries the caller's request for a new category.
type CreateInput struct {
	BlogID   string
	ParentID *string
	TopicID  int
	Name     string
	IsPublic bool
}

// VisibilityResult reports the outcome of a visibility change.
type VisibilityResult struct {
	CategoryID  string   `json:"category_id"`
	IsPublic    bool     `json:"is_public"`
	AffectedIDs []string `json:"affected_ids"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldParentID    = "parent_id"
	FieldIsPublic    = "is_public"
	FieldCategoryID1 = "category_id_1"
	FieldCategoryID2 = "category_id_2"
)
