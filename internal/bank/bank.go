package bank

import "slices"

// Bank is an immutable, validated set of categories and questions with
// precomputed indices.
type Bank struct {
	categories []Category
	questions  []Question
	leaves     []Category
	byID       map[string]Category
	parentOf   map[string]string
	byCategory map[string][]Question
}

// New validates the given categories and questions and builds a Bank.
// Returns a *ValidationError describing every problem found.
func New(categories []Category, questions []Question) (*Bank, error) {
	if err := validate(categories, questions); err != nil {
		return nil, err
	}

	b := &Bank{
		categories: slices.Clone(categories),
		questions:  slices.Clone(questions),
		byID:       make(map[string]Category),
		parentOf:   make(map[string]string),
		byCategory: make(map[string][]Question),
	}

	for _, c := range b.categories {
		b.byID[c.ID] = c
		if !c.IsGroup() {
			b.leaves = append(b.leaves, c)
			continue
		}
		for _, sub := range c.Subcategories {
			b.byID[sub.ID] = sub
			b.parentOf[sub.ID] = c.ID
			b.leaves = append(b.leaves, sub)
		}
	}

	for _, q := range b.questions {
		b.byCategory[q.Category] = append(b.byCategory[q.Category], q)
	}

	return b, nil
}

// Categories returns the top-level categories in display order.
func (b *Bank) Categories() []Category {
	return slices.Clone(b.categories)
}

// Leaves returns the selectable categories in display order.
// For a flat bank this is the same as Categories.
func (b *Bank) Leaves() []Category {
	return slices.Clone(b.leaves)
}

// LeafIDs returns the IDs of all selectable categories.
func (b *Bank) LeafIDs() []string {
	ids := make([]string, len(b.leaves))
	for i, c := range b.leaves {
		ids[i] = c.ID
	}
	return ids
}

// Nested returns true if any top-level category has subcategories.
func (b *Bank) Nested() bool {
	return len(b.parentOf) > 0
}

// Category looks up a category (group or leaf) by ID.
func (b *Bank) Category(id string) (Category, bool) {
	c, ok := b.byID[id]
	return c, ok
}

// IsLeaf returns true if id names a selectable category.
func (b *Bank) IsLeaf(id string) bool {
	c, ok := b.byID[id]
	return ok && !c.IsGroup()
}

// Parent returns the group ID of a leaf, or "" for top-level leaves.
func (b *Bank) Parent(id string) string {
	return b.parentOf[id]
}

// Children returns the leaf IDs under a group. A leaf returns itself.
func (b *Bank) Children(id string) []string {
	c, ok := b.byID[id]
	if !ok {
		return nil
	}
	if !c.IsGroup() {
		return []string{c.ID}
	}
	ids := make([]string, len(c.Subcategories))
	for i, sub := range c.Subcategories {
		ids[i] = sub.ID
	}
	return ids
}

// Questions returns all questions in bank order.
func (b *Bank) Questions() []Question {
	return slices.Clone(b.questions)
}

// Filter returns the questions tagged with any of the given category IDs,
// in bank order. Unknown IDs match nothing.
func (b *Bank) Filter(ids []string) []Question {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Question
	for _, q := range b.questions {
		if want[q.Category] {
			out = append(out, q)
		}
	}
	return out
}

// Count returns the number of questions tagged with any of the given IDs.
func (b *Bank) Count(ids []string) int {
	seen := make(map[string]bool, len(ids))
	n := 0
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		n += len(b.byCategory[id])
	}
	return n
}

// CountIn returns the number of questions tagged with the given category.
func (b *Bank) CountIn(id string) int {
	return b.Count(b.Children(id))
}
