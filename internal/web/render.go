package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/biblioteca/biblioteca-admin/internal/model"
	"github.com/biblioteca/biblioteca-admin/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
)

// NavLink is one entry of the fixed navigation bar.
type NavLink struct {
	Href  string
	Label string
}

var Nav = []NavLink{
	{Href: "/", Label: "Inicio"},
	{Href: "/libros", Label: "Libros"},
	{Href: "/libros/nuevo", Label: "Agregar Libro"},
	{Href: "/usuarios", Label: "Usuarios"},
}

// Page is the data every template receives.
type Page struct {
	Title         string
	Path          string
	Flashes       []session.Flash
	CSRFToken     string
	LoginEnabled  bool
	Authenticated bool
	Data          any
}

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template once.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile || file == partialsFile {
			continue
		}

		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, partialsFile, file)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes the named page with the given status. The page is executed
// into a buffer first so a template error never produces half a page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"nav":      func() []NavLink { return Nav },
	"isActive": isActive,
	"date":     formatDate,
	"year":     formatYear,
	"deleteButton": func(action, from, csrf string) deleteButton {
		return deleteButton{Action: action, From: from, CSRF: csrf}
	},
}

type deleteButton struct {
	Action string
	From   string
	CSRF   string
}

// isActive reports whether href is the current page. Only exact matches
// count, so /libros/5 highlights nothing.
func isActive(current, href string) bool {
	return current == href
}

func formatDate(t *model.Timestamp) string {
	return t.DateString("N/A")
}

func formatYear(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}
