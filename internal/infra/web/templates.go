package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds the parsed tracker page and its partials.
type Templates struct {
	root *template.Template
}

// LoadTemplates parses the embedded templates.
func LoadTemplates() (*Templates, error) {
	funcMap := template.FuncMap{
		"widthStyle": func(pct float64) template.CSS {
			return template.CSS(fmt.Sprintf("width: %.0f%%", pct))
		},
	}
	root, err := template.New("tracker").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Templates{root: root}, nil
}

// ExecuteTemplate renders a named template.
func (t *Templates) ExecuteTemplate(w io.Writer, name string, data any) error {
	if t.root.Lookup(name) == nil {
		return fmt.Errorf("template %q not found", name)
	}
	return t.root.ExecuteTemplate(w, name, data)
}
