package schema

// BlogMemberMappingTable represents the 'blog.membermapping' table
type BlogMemberMappingTable struct {
	Table     string
	BlogFID   string
	UserID    string
	Role      string
	CreatedAt string
}

// BlogMemberMapping is the schema definition for blog.membermapping
var BlogMemberMapping = BlogMemberMappingTable{
	Table:     "blog.membermapping",
	BlogFID:   "blogfid",
	UserID:    "userid",
	Role:      "role",
	CreatedAt: "createdat",
}

func (t BlogMemberMappingTable) Columns() []string {
	return []string{t.BlogFID, t.UserID, t.Role, t.CreatedAt}
}
