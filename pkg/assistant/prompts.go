package assistant

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"rawdago/pkg/catalog"
	"rawdago/pkg/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Age-level labels substituted into prompts. The story prompt carries
// the explicit age range so the model pitches vocabulary correctly.
const (
	labelYounger      = "التمهيدي الأول (Moyenne Section)"
	labelOlder        = "التمهيدي الثاني (Grande Section)"
	labelYoungerStory = "التمهيدي الأول (Moyenne Section), aged 3-4 years"
	labelOlderStory   = "التمهيدي الثاني (Grande Section), aged 5-6 years"
)

type promptData struct {
	AgeContext string
	Input      string
}

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing prompt templates: %w", err)
	}
	return tmpl, nil
}

// buildPrompt renders the prompt for a handler kind. User input is
// interpolated verbatim; the model is trusted to handle arbitrary text.
func buildPrompt(tmpl *template.Template, kind catalog.Kind, input string, age model.AgeLevel) (string, error) {
	data := promptData{
		AgeContext: ageContext(kind, age),
		Input:      input,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, string(kind)+".tmpl", data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", kind, err)
	}
	return buf.String(), nil
}

func ageContext(kind catalog.Kind, age model.AgeLevel) string {
	if kind == catalog.KindStory {
		if age == model.AgeFourYears {
			return labelYoungerStory
		}
		return labelOlderStory
	}
	if age == model.AgeFourYears {
		return labelYounger
	}
	return labelOlder
}
