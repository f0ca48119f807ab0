package bank

// Category groups questions. In a two-level bank a category with
// subcategories is a group: only its leaves tag questions and can be
// selected.
type Category struct {
	ID            string     `yaml:"id" json:"id"`
	Name          string     `yaml:"name" json:"name"`
	Description   string     `yaml:"description" json:"description"`
	Subcategories []Category `yaml:"subcategories,omitempty" json:"subcategories,omitempty"`
}

// IsGroup returns true if the category has subcategories.
func (c Category) IsGroup() bool {
	return len(c.Subcategories) > 0
}

// Question is a single multiple-choice question. Text and answers may
// contain $inline$ and $$block$$ math segments, which are kept verbatim.
type Question struct {
	ID       int      `yaml:"id" json:"id"`
	Category string   `yaml:"category" json:"category"`
	Text     string   `yaml:"question" json:"question"`
	Correct  string   `yaml:"correctAnswer" json:"correctAnswer"`
	Wrong    []string `yaml:"wrongAnswers" json:"wrongAnswers"`
}

// Answers returns the wrong answers followed by the correct answer.
// The returned slice is a fresh copy.
func (q Question) Answers() []string {
	out := make([]string, 0, len(q.Wrong)+1)
	out = append(out, q.Wrong...)
	return append(out, q.Correct)
}

// Document is the on-disk shape of a question bank file.
type Document struct {
	Version    string     `yaml:"version" json:"version"`
	Categories []Category `yaml:"categories" json:"categories"`
	Questions  []Question `yaml:"questions" json:"questions"`
}
