package schema

// BlogCategoryTable represents the 'blog.category' table
type BlogCategoryTable struct {
	Table     string
	ID        string
	BlogFID   string
	ParentID  string
	TopicID   string
	Name      string
	Slug      string
	IsPublic  string
	SortOrder string
	Depth     string
	CreatedAt string
	UpdatedAt string
}

// BlogCategory is the schema definition for blog.category
var BlogCategory = BlogCategoryTable{
	Table:     "blog.category",
	ID:        "id",
	BlogFID:   "blogfid",
	ParentID:  "parentid",
	TopicID:   "topicid",
	Name:      "name",
	Slug:      "slug",
	IsPublic:  "ispublic",
	SortOrder: "sortorder",
	Depth:     "depth",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t BlogCategoryTable) Columns() []string {
	return []string{
		t.ID, t.BlogFID, t.ParentID, t.TopicID, t.Name, t.Slug,
		t.IsPublic, t.SortOrder, t.Depth, t.CreatedAt, t.UpdatedAt,
	}
}
