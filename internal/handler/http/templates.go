package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/work-notes/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds every page template. Content templates are rendered
// first and then wrapped into "base".
type Templates struct {
	all *template.Template
}

// flash is a one-shot status line shown above the page content.
type flash struct {
	OK      bool
	Message string
}

// viewData is the single data shape handed to every template.
type viewData struct {
	Title           string
	ContentTemplate string
	ContentHTML     template.HTML

	Flash   *flash
	Strict  bool
	Version string
	Today   string

	Query models.QueryParams
	Page  models.Page
	Note  models.Note
	Form  models.SaveRequest
}

func ParseTemplates() (*Templates, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"noteURL": func(name string) string {
			return "/notes/" + url.PathEscape(name)
		},
		"downloadURL": func(name string) string {
			return "/download/" + url.PathEscape(name)
		},
		"pageURL": pageURL,
		"plural": func(n int) string {
			if n == 1 {
				return ""
			}
			return "s"
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Templates{all: t}, nil
}

// RenderPage executes data.ContentTemplate and embeds the result into the
// base layout, writing status on success.
func (t *Templates) RenderPage(w http.ResponseWriter, status int, data viewData) error {
	var content bytes.Buffer
	if err := t.all.ExecuteTemplate(&content, data.ContentTemplate, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error rendering %s: %w", data.ContentTemplate, err)
	}
	data.ContentHTML = template.HTML(content.String())

	var page bytes.Buffer
	if err := t.all.ExecuteTemplate(&page, "base", data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error rendering base: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := page.WriteTo(w)
	return err
}

// PrevURL and NextURL link the neighbouring list pages.
func (d viewData) PrevURL() string { return pageURL(d.Query, d.Page.CurrentPage-1) }
func (d viewData) NextURL() string { return pageURL(d.Query, d.Page.CurrentPage+1) }

// pageURL builds a list URL that keeps the active filters.
func pageURL(q models.QueryParams, page int) string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if q.From != "" {
		values.Set("from", q.From)
	}
	if q.To != "" {
		values.Set("to", q.To)
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if len(values) == 0 {
		return "/"
	}
	return "/?" + values.Encode()
}
