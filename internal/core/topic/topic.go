// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package topic serves the read-only topic catalog that categories are filed under.

The catalog is two levels deep: root topics, each carrying its ordered sub-topics.
Any topic at either level is a valid category reference.
*/
package topic

// Topic is a catalog entry. SubTopics is populated for roots only.
type Topic struct {
	ID        int     `json:"topic_id"`
	Name      string  `json:"name"`
	SortOrder int     `json:"sort_order"`
	SubTopics []Topic `json:"sub_topics,omitempty"`
}

// contains reports whether id names a root topic or one of its sub-topics.
func contains(catalog []*Topic, id int) bool {
	for _, root := range catalog {
		if root.ID == id {
			return true
		}
		for _, sub := range root.SubTopics {
			if sub.ID == id {
				return true
			}
		}
	}
	return false
}
