package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		want language.Tag
	}{
		{"en", language.English},
		{"en_US.UTF-8", language.English},
		{"es", language.Spanish},
		{"es_MX.UTF-8", language.Spanish},
		{"es-AR", language.Spanish},
		{"C", language.English},
		{"", language.English},
		{"ja_JP.UTF-8", language.English},
		{"!!", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.name).Tag; got != tt.want {
				t.Errorf("Match(%q).Tag = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTablesComplete(t *testing.T) {
	for _, s := range []*Strings{&English, &Spanish} {
		fields := []string{
			s.AppName, s.SelectCategories, s.StartQuiz, s.QuestionOf, s.Score,
			s.Correct, s.Incorrect, s.ContinueHint, s.QuizComplete,
			s.Perfect, s.Excellent, s.Good, s.KeepPracticing,
			s.ReturnToMenu, s.Restart,
		}
		for i, f := range fields {
			if f == "" {
				t.Errorf("%v: field %d empty", s.Tag, i)
			}
		}
	}
}
