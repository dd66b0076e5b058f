// Package views — HTML-шаблоны страниц блога (встроены в бинарник).
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"blogfront/internal/models"
)

//go:embed templates/*.html
var files embed.FS

var pageNames = []string{"home", "view", "form", "login", "register", "error"}

// Page — общее для всех страниц: навбар и сообщения.
type Page struct {
	Title         string
	Authenticated bool
	Identity      string
	Notices       []string
	Errors        []string
	Data          any
}

// HomeCategories — чипы категорий на главной, "All" первым.
func HomeCategories() []string {
	return append([]string{models.CategoryAll}, models.Categories...)
}

type HomeData struct {
	Filter     models.FilterState
	Posts      []models.BlogPost
	Total      int
	Categories []string
	Error      string
}

type ViewData struct {
	Post          models.BlogPost
	ContentHTML   template.HTML
	Comments      []models.Comment
	CommentsError string
	ConfirmDelete bool
}

type FormData struct {
	Edit        bool
	Action      string
	PostID      string
	Input       models.BlogInput
	TagInput    string
	Categories  []string
	Suggestions []string
	Error       string
	LoadFailed  bool
}

type LoginData struct {
	Email string
	Next  string
	Error string
}

type RegisterData struct {
	Username string
	Email    string
	Error    string
}

type ErrorData struct {
	Message string
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"categoryURL": func(f models.FilterState, category string) string {
		return f.WithCategory(category).URL()
	},
	"tagURL": func(f models.FilterState, tag string) string {
		return f.WithTag(tag).URL()
	},
	// чип тега со страницы поста: фильтр с нуля
	"tagLink": func(tag string) string {
		return models.NewFilterState().WithTag(tag).URL()
	},
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render рендерит страницу целиком в буфер, чтобы ошибка шаблона не
// оставила полстраницы с кодом 200.
func (v *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
