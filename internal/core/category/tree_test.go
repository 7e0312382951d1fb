// Copyright (c) 2026 Caboomlog. All rights reserved.

package category_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caboomlog/backend/internal/core/category"
	"github.com/caboomlog/backend/pkg/pointer"
)

func record(id string, parent string, order int) *category.Category {
	c := &category.Category{ID: id, BlogID: blog, Name: id, Order: order, IsPublic: true, Depth: 1}
	if parent != "" {
		c.ParentID = pointer.To(parent)
	}
	return c
}

func ids(nodes []*category.Node) []string {
	result := make([]string, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, node.ID)
	}
	return result
}

/*
TestBuildTree_PreservesInputOrder verifies that roots and siblings keep the input order
even when a child is listed before its parent.
*/
func TestBuildTree_PreservesInputOrder(t *testing.T) {
	input := []*category.Category{
		record("japan", "travel", 1),
		record("travel", "", 1),
		record("food", "", 2),
		record("korea", "travel", 2),
		record("tokyo", "japan", 1),
	}

	forest := category.BuildTree(input)

	require.Equal(t, []string{"travel", "food"}, ids(forest))
	assert.Equal(t, []string{"japan", "korea"}, ids(forest[0].Children))
	assert.Equal(t, []string{"tokyo"}, ids(forest[0].Children[0].Children))
	assert.NotNil(t, forest[1].Children)
	assert.Empty(t, forest[1].Children)
}

/*
TestBuildTree_DoesNotMutateInput verifies that the flat list is left untouched.
*/
func TestBuildTree_DoesNotMutateInput(t *testing.T) {
	input := []*category.Category{record("travel", "", 1), record("japan", "travel", 1)}
	before := []category.Category{*input[0], *input[1]}

	forest := category.BuildTree(input)
	forest[0].Children[0].Name = "changed"
	*forest[0].Children[0].ParentID = "changed"

	assert.Equal(t, before[0], *input[0])
	assert.Equal(t, "japan", input[1].Name)
	assert.Equal(t, "travel", *input[1].ParentID)
}

/*
TestBuildTree_Empty verifies that no input yields an empty, non-nil forest.
*/
func TestBuildTree_Empty(t *testing.T) {
	assert.NotNil(t, category.BuildTree(nil))
	assert.Empty(t, category.BuildTree([]*category.Category{}))
}

/*
TestBuildTree_DropsUnreachable verifies the filtering contract: records whose parent is
missing vanish together with their descendants.
*/
func TestBuildTree_DropsUnreachable(t *testing.T) {
	// "japan" (private) is absent from a public-only list; "tokyo" is public.
	input := []*category.Category{
		record("travel", "", 1),
		record("tokyo", "japan", 1),
		record("shibuya", "tokyo", 1),
		record("korea", "travel", 2),
	}

	flat := category.Flatten(category.BuildTree(input))
	assert.Equal(t, []string{"travel", "korea"}, ids(flat))
}

/*
TestBuildTree_SelfParent verifies that a record naming itself as parent is not attached
to itself.
*/
func TestBuildTree_SelfParent(t *testing.T) {
	input := []*category.Category{record("travel", "", 1), record("loop", "loop", 1)}

	flat := category.Flatten(category.BuildTree(input))
	assert.Equal(t, []string{"travel"}, ids(flat))
}

/*
TestFlatten_PreOrder verifies the traversal order.
*/
func TestFlatten_PreOrder(t *testing.T) {
	input := []*category.Category{
		record("a", "", 1), record("b", "", 2),
		record("a1", "a", 1), record("a2", "a", 2),
		record("a1x", "a1", 1), record("b1", "b", 1),
	}

	flat := category.Flatten(category.BuildTree(input))
	assert.Equal(t, []string{"a", "a1", "a1x", "a2", "b", "b1"}, ids(flat))

	entry := category.ToFlat(flat[2])
	assert.Equal(t, "a1x", entry.ID)
	assert.Equal(t, "a1", pointer.Val(entry.ParentID))
}

/*
TestBuildTree_RoundTrip checks on random well-formed forests that a pre-order flatten
yields every input ID exactly once and no node has two parents.
*/
func TestBuildTree_RoundTrip(t *testing.T) {
	random := rand.New(rand.NewSource(20260101))

	for trial := 0; trial < 50; trial++ {
		size := random.Intn(category.MaxCategoriesPerBlog) + 1
		input := make([]*category.Category, 0, size)
		depth := make(map[string]int, size)

		for i := 0; i < size; i++ {
			id := fmt.Sprintf("c%d-%d", trial, i)
			parent := ""
			if i > 0 && random.Intn(3) > 0 {
				candidate := input[random.Intn(len(input))]
				if depth[candidate.ID] < category.MaxDepth {
					parent = candidate.ID
				}
			}

			c := record(id, parent, random.Intn(10)+1)
			depth[id] = depth[parent] + 1
			c.Depth = depth[id]
			input = append(input, c)
		}

		random.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })

		flat := category.Flatten(category.BuildTree(input))
		require.Len(t, flat, len(input))

		seen := make(map[string]int, len(flat))
		parents := make(map[string]string, len(flat))
		for _, node := range flat {
			seen[node.ID]++
			for _, child := range node.Children {
				_, already := parents[child.ID]
				assert.False(t, already, "node %s has two parents", child.ID)
				parents[child.ID] = node.ID
			}
		}

		for _, c := range input {
			assert.Equal(t, 1, seen[c.ID])
			if c.ParentID != nil {
				assert.Equal(t, *c.ParentID, parents[c.ID])
			}
		}
	}
}
