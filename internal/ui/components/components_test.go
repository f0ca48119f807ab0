package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One", Action: func() tea.Cmd { pressed = "one"; return nil }},
		{Label: "Off too", Disabled: true},
		{Label: "Two", Action: func() tea.Cmd { pressed = "two"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("Selected after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "two" {
		t.Errorf("pressed = %q, want two", pressed)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("Selected after up = %d, want 1", m.Selected)
	}
}

func TestChoiceListNumberKeys(t *testing.T) {
	c := NewChoiceList([]string{"3", "4", "5"})

	c, _ = c.Update(keyRune('9'))
	if _, ok := c.PickedOption(); ok {
		t.Fatal("out of range number should not pick")
	}

	c, _ = c.Update(keyRune('2'))
	got, ok := c.PickedOption()
	if !ok || got != "4" {
		t.Fatalf("picked = %q, %v; want 4", got, ok)
	}

	// Further input is ignored once picked.
	c, _ = c.Update(keyRune('1'))
	if got, _ := c.PickedOption(); got != "4" {
		t.Errorf("picked changed to %q", got)
	}
}

func TestChoiceListArrowsAndEnter(t *testing.T) {
	c := NewChoiceList([]string{"a", "b"})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c.Cursor != 1 {
		t.Errorf("Cursor = %d, want clamp at 1", c.Cursor)
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got, _ := c.PickedOption(); got != "b" {
		t.Errorf("picked = %q, want b", got)
	}
}

func TestChoiceListReveal(t *testing.T) {
	c := NewChoiceList([]string{"3", "4", "5"})
	c.Reveal("3", "4")
	if !c.Revealed() {
		t.Fatal("expected revealed")
	}
	view := c.View()
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("view should mark correct and wrong picks:\n%s", view)
	}

	c = NewChoiceList([]string{"3", "4"})
	c.Reveal("4", "4")
	if strings.Contains(c.View(), "✗") {
		t.Error("a correct pick should not show a wrong mark")
	}
}

func TestChecklistCursor(t *testing.T) {
	c := Checklist{Items: []ChecklistItem{
		{ID: "a", Label: "A", State: Checked},
		{ID: "b", Label: "B", Depth: 1},
	}}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	item, ok := c.Current()
	if !ok || item.ID != "b" {
		t.Fatalf("Current = %+v, %v", item, ok)
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", c.Cursor)
	}
	view := c.View(true)
	if !strings.Contains(view, "[x] A") || !strings.Contains(view, "[ ] B") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestButtonDisabled(t *testing.T) {
	calls := 0
	b := NewButton("Go", func() tea.Cmd { calls++; return nil })
	b.Focused = true
	b.Disabled = true
	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if calls != 0 {
		t.Error("disabled button should not fire")
	}
	b.Disabled = false
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestProgressBarFraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 4, 0},
		{2, 4, 0.5},
		{5, 4, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := NewProgressBar("", tt.done, tt.total, 20).Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestRenderMath(t *testing.T) {
	out := RenderMath("Solve $x+1=2$ now", plainStyle())
	for _, want := range []string{"Solve", "x+1=2", "now"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
	if strings.Contains(out, "$") {
		t.Errorf("markers should be stripped: %q", out)
	}

	block := RenderMath("Area: $$\\pi r^2$$", plainStyle())
	if !strings.Contains(block, "\n") {
		t.Errorf("block formula should start a new line: %q", block)
	}
}

func TestRenderMathPlainText(t *testing.T) {
	base := plainStyle().Bold(true)
	for _, text := range []string{"What is 15 + 27?", "Costs $5"} {
		if got, want := RenderMath(text, base), base.Render(text); got != want {
			t.Errorf("RenderMath(%q) = %q, want %q", text, got, want)
		}
	}
}

func plainStyle() lipgloss.Style { return lipgloss.NewStyle() }
