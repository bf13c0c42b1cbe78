// Package ui renders the dashboard's HTML components. Components are plain values rendered
// through html/template; interactive parts post to HTMX actions served by the api package.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"io/fs"
	"maps"
	"regexp"
	"slices"
	"strings"
)

const (
	ToggleInputURL  = "/ui/inputs/toggle"
	AddClientURL    = "/ui/clients/add"
	CreateClientURL = "/ui/clients"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS

	templates = template.Must(template.New("").Funcs(template.FuncMap{
		"attrs": renderAttrs,
	}).ParseFS(templateFS, "templates/*.html"))

	attrNameRegexp = regexp.MustCompile(`^[a-zA-Z_:@][-a-zA-Z0-9_:.@]*$`)
)

// Static holds the images and scripts referenced by the templates.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

func render(w io.Writer, name string, data any) error {
	err := templates.ExecuteTemplate(w, name, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	return nil
}

func renderHTML(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer

	err := render(&buf, name, data)
	if err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec
}

// renderAttrs writes extra attributes verbatim. Names that are not valid attribute names or
// that bind inline event handlers are dropped.
func renderAttrs(attrs map[string]string) template.HTMLAttr {
	var b strings.Builder

	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		if !attrNameRegexp.MatchString(name) || strings.HasPrefix(strings.ToLower(name), "on") {
			continue
		}

		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[name]))
		b.WriteString(`"`)
	}

	return template.HTMLAttr(b.String()) //nolint:gosec
}
