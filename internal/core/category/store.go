// Copyright (c) 2026 Caboomlog. All rights reserved.

package category

import "context"

// # Category Data Access

// Repository defines the data access contract for categories.
//
// Lookups that find nothing return [dberr.ErrNotFound]. List methods return
// categories ordered by sibling order ascending.
type Repository interface {

	/*
		FindByID retrieves a category of any blog by its ID.

		Returns:
		  - *Category: Hydrated entity including the topic name
		  - error: dberr.ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Category, error)

	/*
		ListByBlog returns every category of a blog.
	*/
	ListByBlog(context context.Context, blogID string) ([]*Category, error)

	/*
		ListPublicByBlog returns only the public categories of a blog.
	*/
	ListPublicByBlog(context context.Context, blogID string) ([]*Category, error)

	/*
		CountByBlog returns the number of categories a blog owns.
	*/
	CountByBlog(context context.Context, blogID string) (int, error)

	/*
		CountChildren returns the number of direct children of parentID within a blog.
		A nil parentID counts the blog's roots.
	*/
	CountChildren(context context.Context, blogID string, parentID *string) (int, error)

	/*
		Create persists a new category and fills in its timestamps and topic name.

		Parameters:
		  - context: context.Context
		  - category: *Category (ID, depth and order already assigned)

		Returns:
		  - error: dberr.ErrReferenceMissing if the topic or parent row is gone
	*/
	Create(context context.Context, category *Category) error

	/*
		SetVisibility sets is_public on every listed category of the blog in a single
		transaction. Either all rows change or none do.

		Returns:
		  - int: Number of categories updated
		  - error: Transactional or database failures
	*/
	SetVisibility(context context.Context, blogID string, ids []string, public bool) (int, error)

	/*
		SwapOrder exchanges the sibling order of two categories of the blog in a single
		transaction.
	*/
	SwapOrder(context context.Context, blogID, firstID, secondID string) error
}

// # Collaborators

// TopicLookup resolves topic references. Implemented by the topic service.
type TopicLookup interface {
	Exists(context context.Context, topicID int) (bool, error)
}

// Recorder receives category operation events. Implemented by the metrics collector.
type Recorder interface {
	CategoryCreated()
	VisibilityChanged(public bool, affected int)
	OrderSwapped()
	RuleViolated(code string)
}

type nopRecorder struct{}

func (nopRecorder) CategoryCreated() {}

func (nopRecorder) VisibilityChanged(bool, int) {}

func (nopRecorder) OrderSwapped() {}

func (nopRecorder) RuleViolated(string) {}
