// Package locale holds the literal UI string tables.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Strings is one language's UI copy. Fields holding a format verb are
// passed to fmt.Sprintf by the screens.
type Strings struct {
	Tag language.Tag

	AppName          string
	SelectCategories string
	SelectAll        string
	StartQuiz        string // %d questions
	NoQuestions      string
	QuestionOf       string // %d of %d
	Score            string // %d
	Correct          string
	Incorrect        string
	ContinueHint     string
	AutoAdvanceHint  string
	QuizComplete     string
	Perfect          string
	Excellent        string
	Good             string
	KeepPracticing   string
	ReturnToMenu     string
	Restart          string
	CorrectWas       string // %s

	KeyNavigate string
	KeyToggle   string
	KeySelect   string
	KeyAnswer   string
	KeyContinue string
	KeyStart    string
	KeyBack     string
	KeyQuit     string
}

// English is the default table.
var English = Strings{
	Tag:              language.English,
	AppName:          "Math Quiz",
	SelectCategories: "Select Categories",
	SelectAll:        "Select all",
	StartQuiz:        "Start Quiz (%d questions)",
	NoQuestions:      "No questions available for this selection",
	QuestionOf:       "Question %d of %d",
	Score:            "Score: %d",
	Correct:          "✅ Correct! Well done!",
	Incorrect:        "❌ Incorrect! Better luck next time!",
	ContinueHint:     "Press any key to continue...",
	AutoAdvanceHint:  "Next question coming up...",
	QuizComplete:     "Quiz Complete!",
	Perfect:          "Perfect score! 🎉",
	Excellent:        "Excellent work! 👍",
	Good:             "Good job! 👏",
	KeepPracticing:   "Keep practicing! 💪",
	ReturnToMenu:     "Return to Menu",
	Restart:          "Restart Quiz",
	CorrectWas:       "Correct answer: %s",
	KeyNavigate:      "Navigate",
	KeyToggle:        "Toggle",
	KeySelect:        "Select",
	KeyAnswer:        "Answer",
	KeyContinue:      "Continue",
	KeyStart:         "Start",
	KeyBack:          "Back",
	KeyQuit:          "Quit",
}

// Spanish is the Spanish table.
var Spanish = Strings{
	Tag:              language.Spanish,
	AppName:          "Quiz de Matemáticas",
	SelectCategories: "Elige las categorías",
	SelectAll:        "Seleccionar todo",
	StartQuiz:        "Empezar (%d preguntas)",
	NoQuestions:      "No hay preguntas para esta selección",
	QuestionOf:       "Pregunta %d de %d",
	Score:            "Puntos: %d",
	Correct:          "✅ ¡Correcto! ¡Bien hecho!",
	Incorrect:        "❌ ¡Incorrecto! ¡Suerte la próxima!",
	ContinueHint:     "Pulsa cualquier tecla para continuar...",
	AutoAdvanceHint:  "Siguiente pregunta en camino...",
	QuizComplete:     "¡Quiz terminado!",
	Perfect:          "¡Puntuación perfecta! 🎉",
	Excellent:        "¡Excelente trabajo! 👍",
	Good:             "¡Buen trabajo! 👏",
	KeepPracticing:   "¡Sigue practicando! 💪",
	ReturnToMenu:     "Volver al menú",
	Restart:          "Repetir quiz",
	CorrectWas:       "Respuesta correcta: %s",
	KeyNavigate:      "Mover",
	KeyToggle:        "Marcar",
	KeySelect:        "Elegir",
	KeyAnswer:        "Responder",
	KeyContinue:      "Continuar",
	KeyStart:         "Empezar",
	KeyBack:          "Atrás",
	KeyQuit:          "Salir",
}

var tables = []*Strings{&English, &Spanish}

var matcher = language.NewMatcher([]language.Tag{English.Tag, Spanish.Tag})

// Match returns the table best matching a locale name. It accepts BCP 47
// tags ("es-MX") and POSIX locale names ("es_MX.UTF-8"). Anything
// unparseable falls back to English.
func Match(name string) *Strings {
	tag, err := language.Parse(normalize(name))
	if err != nil {
		return &English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return &English
	}
	return tables[idx]
}

// Supported returns the tags with a string table.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		tags[i] = t.Tag
	}
	return tags
}

// normalize turns a POSIX locale name into a BCP 47 tag.
func normalize(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "C" || name == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(name, "_", "-")
}
