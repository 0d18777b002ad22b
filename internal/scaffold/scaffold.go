package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"text/template"

	"github.com/natively-ui/natively/internal/branding"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// Data holds the template variables available to built-in templates.
type Data struct {
	Tool   string // CLI name that wrote the file
	Source string // registry path the file would normally come from
}

// NewData returns Data for a file normally fetched from source.
func NewData(source string) Data {
	return Data{Tool: branding.CLIName(), Source: source}
}

// Render executes the built-in template for name (e.g. "utils.ts").
func Render(name string, data Data) ([]byte, error) {
	tmplPath := "scaffolds/" + name + ".tmpl"
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("no built-in template for %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
