// Copyright (c) 2026 Caboomlog. All rights reserved.

package category

// # Visibility Cascade

/*
collectSubtree returns rootID followed by every descendant found in categories,
in breadth-first order.

The parent links are only read through an index built from the list, so a
malformed cycle terminates instead of looping.
*/
func collectSubtree(categories []*Category, rootID string) []string {
	children := make(map[string][]string, len(categories))
	for _, category := range categories {
		if category.ParentID != nil {
			children[*category.ParentID] = append(children[*category.ParentID], category.ID)
		}
	}

	visited := map[string]bool{rootID: true}
	collected := []string{rootID}

	for head := 0; head < len(collected); head++ {
		for _, childID := range children[collected[head]] {
			if visited[childID] {
				continue
			}
			visited[childID] = true
			collected = append(collected, childID)
		}
	}

	return collected
}
