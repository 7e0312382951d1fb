// Copyright (c) 2026 Caboomlog. All rights reserved.

package category

// # Tree View

// Node is one category in a rendered forest. Nodes are built fresh for every read
// and never written back to storage.
type Node struct {
	ID        string  `json:"category_id"`
	ParentID  *string `json:"parent_id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	IsPublic  bool    `json:"is_public"`
	Depth     int     `json:"depth"`
	Order     int     `json:"order"`
	TopicID   int     `json:"topic_id"`
	TopicName string  `json:"topic_name"`
	Children  []*Node `json:"children"`
}

func newNode(category *Category) *Node {
	node := &Node{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug,
		IsPublic:  category.IsPublic,
		Depth:     category.Depth,
		Order:     category.Order,
		TopicID:   category.TopicID,
		TopicName: category.TopicName,
		Children:  make([]*Node, 0),
	}
	if category.ParentID != nil {
		parentID := *category.ParentID
		node.ParentID = &parentID
	}
	return node
}

/*
BuildTree turns a flat category list into a forest.

Roots and every sibling group keep the order of the input list. The input is not
modified. A category whose parent is not in the list is dropped, and so is everything
reachable only through it; this is how a public-only list yields a public-only tree.

Parameters:
  - categories: []*Category (Typically ordered by sibling order)

Returns:
  - []*Node: Root nodes, never nil
*/
func BuildTree(categories []*Category) []*Node {
	nodes := make(map[string]*Node, len(categories))
	for _, category := range categories {
		nodes[category.ID] = newNode(category)
	}

	roots := make([]*Node, 0)
	for _, category := range categories {
		node := nodes[category.ID]

		if category.ParentID == nil {
			roots = append(roots, node)
			continue
		}

		if parent, found := nodes[*category.ParentID]; found && parent != node {
			parent.Children = append(parent.Children, node)
		}
	}

	return roots
}

/*
Flatten lists a forest in pre-order: each node followed by its subtree, siblings in
display order.
*/
func Flatten(forest []*Node) []*Node {
	flat := make([]*Node, 0, len(forest))

	var visit func(nodes []*Node)
	visit = func(nodes []*Node) {
		for _, node := range nodes {
			flat = append(flat, node)
			visit(node.Children)
		}
	}
	visit(forest)

	return flat
}

// FlatNode is a [Node] without its children, used for dropdown-style listings.
type FlatNode struct {
	ID        string  `json:"category_id"`
	ParentID  *string `json:"parent_id"`
	Name      string  `json:"name"`
	IsPublic  bool    `json:"is_public"`
	Depth     int     `json:"depth"`
	Order     int     `json:"order"`
	TopicName string  `json:"topic_name"`
}

// ToFlat drops the children of node.
func ToFlat(node *Node) FlatNode {
	return FlatNode{
		ID:        node.ID,
		ParentID:  node.ParentID,
		Name:      node.Name,
		IsPublic:  node.IsPublic,
		Depth:     node.Depth,
		Order:     node.Order,
		TopicName: node.TopicName,
	}
}
