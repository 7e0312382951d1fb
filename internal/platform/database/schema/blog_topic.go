package schema

// BlogTopicTable represents the 'blog.topic' table
type BlogTopicTable struct {
	Table     string
	ID        string
	ParentID  string
	Name      string
	SortOrder string
}

// BlogTopic is the schema definition for blog.topic
var BlogTopic = BlogTopicTable{
	Table:     "blog.topic",
	ID:        "id",
	ParentID:  "parentid",
	Name:      "name",
	SortOrder: "sortorder",
}

func (t BlogTopicTable) Columns() []string {
	return []string{t.ID, t.ParentID, t.Name, t.SortOrder}
}
