package bank

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a bank.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question bank: %s", strings.Join(e.Problems, "; "))
}

// validate performs all structural checks on categories and questions.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validate(categories []Category, questions []Question) error {
	var errs []string

	if len(categories) == 0 {
		errs = append(errs, "no categories defined")
	}

	idSet := make(map[string]bool)
	leafSet := make(map[string]bool)

	addCategory := func(c Category, parent string) {
		if strings.TrimSpace(c.ID) == "" {
			errs = append(errs, fmt.Sprintf("category %q has an empty ID", c.Name))
			return
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		idSet[c.ID] = true
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("category %q has no name", c.ID))
		}
		if parent != "" && c.IsGroup() {
			errs = append(errs, fmt.Sprintf("category %q under %q nests deeper than two levels", c.ID, parent))
		}
		if !c.IsGroup() {
			leafSet[c.ID] = true
		}
	}

	for _, c := range categories {
		addCategory(c, "")
		for _, sub := range c.Subcategories {
			addCategory(sub, c.ID)
		}
	}

	qIDs := make(map[int]bool, len(questions))
	for _, q := range questions {
		if q.ID <= 0 {
			errs = append(errs, fmt.Sprintf("question %q has invalid ID %d", q.Text, q.ID))
		}
		if qIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		qIDs[q.ID] = true

		switch {
		case !idSet[q.Category]:
			errs = append(errs, fmt.Sprintf("question %d references nonexistent category %q", q.ID, q.Category))
		case !leafSet[q.Category]:
			errs = append(errs, fmt.Sprintf("question %d is tagged with group category %q", q.ID, q.Category))
		}

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %d has no text", q.ID))
		}
		if strings.TrimSpace(q.Correct) == "" {
			errs = append(errs, fmt.Sprintf("question %d has no correct answer", q.ID))
		}
		if len(q.Wrong) == 0 {
			errs = append(errs, fmt.Sprintf("question %d has no wrong answers", q.ID))
		}

		seen := map[string]bool{q.Correct: true}
		for _, w := range q.Wrong {
			if w == q.Correct {
				errs = append(errs, fmt.Sprintf("question %d lists its correct answer %q as wrong", q.ID, w))
				continue
			}
			if seen[w] {
				errs = append(errs, fmt.Sprintf("question %d has duplicate answer %q", q.ID, w))
			}
			seen[w] = true
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
