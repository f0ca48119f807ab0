package bank

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	b := Default()
	if len(b.Questions()) != 16 {
		t.Errorf("len(Questions) = %d, want 16", len(b.Questions()))
	}
	if !b.Nested() {
		t.Error("expected embedded bank to be two-level")
	}

	want := []string{"arithmetic", "fractions", "algebra", "geometry"}
	if got := b.LeafIDs(); !slices.Equal(got, want) {
		t.Errorf("LeafIDs = %v, want %v", got, want)
	}
}

func TestDefault_EveryLeafHasQuestions(t *testing.T) {
	b := Default()
	for _, c := range b.Leaves() {
		if b.CountIn(c.ID) == 0 {
			t.Errorf("category %q has no questions", c.ID)
		}
	}
}

func TestFilter_ExactMembership(t *testing.T) {
	b := Default()
	ids := []string{"algebra", "geometry"}

	got := b.Filter(ids)
	if len(got) != b.Count(ids) {
		t.Errorf("len(Filter) = %d, Count = %d", len(got), b.Count(ids))
	}
	for _, q := range got {
		if q.Category != "algebra" && q.Category != "geometry" {
			t.Errorf("question %d has category %q outside filter", q.ID, q.Category)
		}
	}

	// Every matching question in the bank must be present.
	n := 0
	for _, q := range b.Questions() {
		if q.Category == "algebra" || q.Category == "geometry" {
			n++
		}
	}
	if n != len(got) {
		t.Errorf("Filter returned %d questions, bank has %d matching", len(got), n)
	}
}

func TestFilter_UnknownAndEmpty(t *testing.T) {
	b := Default()
	if got := b.Filter(nil); len(got) != 0 {
		t.Errorf("Filter(nil) returned %d questions", len(got))
	}
	if got := b.Filter([]string{"calculus"}); len(got) != 0 {
		t.Errorf("Filter(unknown) returned %d questions", len(got))
	}
}

func TestCount_IgnoresDuplicates(t *testing.T) {
	b := Default()
	if b.Count([]string{"algebra", "algebra"}) != b.Count([]string{"algebra"}) {
		t.Error("duplicate IDs should not be counted twice")
	}
}

func TestChildrenAndParent(t *testing.T) {
	b := Default()

	if got := b.Children("number"); !slices.Equal(got, []string{"arithmetic", "fractions"}) {
		t.Errorf("Children(number) = %v", got)
	}
	if got := b.Children("algebra"); !slices.Equal(got, []string{"algebra"}) {
		t.Errorf("Children(algebra) = %v, want itself", got)
	}
	if got := b.Children("nope"); got != nil {
		t.Errorf("Children(unknown) = %v, want nil", got)
	}
	if p := b.Parent("geometry"); p != "shape-and-symbol" {
		t.Errorf("Parent(geometry) = %q", p)
	}
	if b.IsLeaf("number") {
		t.Error("group should not be a leaf")
	}
	if !b.IsLeaf("fractions") {
		t.Error("fractions should be a leaf")
	}
}

func TestFlatBank(t *testing.T) {
	b, err := New(
		[]Category{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		[]Question{{ID: 1, Category: "a", Text: "q", Correct: "1", Wrong: []string{"2"}}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Nested() {
		t.Error("flat bank reported as nested")
	}
	if got := b.LeafIDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("LeafIDs = %v", got)
	}
}

func TestQuestionAnswers_Copy(t *testing.T) {
	q := Question{Correct: "4", Wrong: []string{"1", "2", "3"}}
	a := q.Answers()
	if !slices.Equal(a, []string{"1", "2", "3", "4"}) {
		t.Errorf("Answers = %v", a)
	}
	a[0] = "x"
	if q.Wrong[0] != "1" {
		t.Error("Answers must not alias Wrong")
	}
}

func TestNew_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		questions  []Question
		wantSub    string
	}{
		{
			name:    "no categories",
			wantSub: "no categories",
		},
		{
			name:       "duplicate category",
			categories: []Category{{ID: "a", Name: "A"}, {ID: "a", Name: "A2"}},
			wantSub:    `duplicate category ID: "a"`,
		},
		{
			name:       "dangling category",
			categories: []Category{{ID: "a", Name: "A"}},
			questions:  []Question{{ID: 1, Category: "z", Text: "q", Correct: "1", Wrong: []string{"2"}}},
			wantSub:    `nonexistent category "z"`,
		},
		{
			name:       "group tag",
			categories: []Category{{ID: "g", Name: "G", Subcategories: []Category{{ID: "a", Name: "A"}}}},
			questions:  []Question{{ID: 1, Category: "g", Text: "q", Correct: "1", Wrong: []string{"2"}}},
			wantSub:    `group category "g"`,
		},
		{
			name:       "duplicate question",
			categories: []Category{{ID: "a", Name: "A"}},
			questions: []Question{
				{ID: 1, Category: "a", Text: "q", Correct: "1", Wrong: []string{"2"}},
				{ID: 1, Category: "a", Text: "r", Correct: "1", Wrong: []string{"2"}},
			},
			wantSub: "duplicate question ID: 1",
		},
		{
			name:       "correct listed as wrong",
			categories: []Category{{ID: "a", Name: "A"}},
			questions:  []Question{{ID: 1, Category: "a", Text: "q", Correct: "1", Wrong: []string{"1"}}},
			wantSub:    "lists its correct answer",
		},
		{
			name:       "no wrong answers",
			categories: []Category{{ID: "a", Name: "A"}},
			questions:  []Question{{ID: 1, Category: "a", Text: "q", Correct: "1"}},
			wantSub:    "no wrong answers",
		},
		{
			name: "three levels",
			categories: []Category{{ID: "g", Name: "G", Subcategories: []Category{
				{ID: "h", Name: "H", Subcategories: []Category{{ID: "a", Name: "A"}}},
			}}},
			wantSub: "deeper than two levels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.categories, tt.questions)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}
