// Package render draws the admin console pages and table row fragments.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Row fragment names
const (
	UserRow       = "user_row"
	LoginRow      = "login_row"
	FeedbackRow   = "feedback_row"
	StoryRow      = "story_row"
	ExpressionRow = "expression_row"
)

var pageNames = []string{"overview", "list", "user_detail", "feedback_detail", "story_detail", "error"}

var funcs = template.FuncMap{
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return "N/A"
		}
		return t.UTC().Format("2006-01-02 15:04")
	},
	// confidence already arrives as a percentage from the inference service
	"percent": func(f *float64) string {
		if f == nil {
			return "N/A"
		}
		return fmt.Sprintf("%.2f%%", *f)
	},
	"rating": func(r *int) string {
		if r == nil {
			return "-"
		}
		return fmt.Sprintf("%d/5", *r)
	},
}

// ListPage is a table page whose first rows are embedded and the rest fetched on scroll.
type ListPage struct {
	Title   string
	Columns []string
	Rows    []template.HTML
	HasMore bool
	DataURL string
}

// OverviewPage is the admin landing page.
type OverviewPage struct {
	Analytics *models.Analytics
}

// UserDetailPage shows one account with its activity.
type UserDetailPage struct {
	User            *models.User
	LoginCount      int64
	ExpressionCount int64
	Statuses        []string
	Expressions     ListPage
}

// FeedbackDetailPage shows one ticket.
type FeedbackDetailPage struct {
	Feedback *models.FeedbackView
}

// StoryDetailPage shows one story with the moderation form.
type StoryDetailPage struct {
	Story    *models.StoryView
	Statuses []string
}

type errorPage struct {
	Status  int
	Message string
}

// Renderer holds the parsed admin templates.
type Renderer struct {
	pages map[string]*template.Template
	rows  *template.Template
}

// New parses every embedded template.
func New() (*Renderer, error) {
	rows, err := template.New("rows").Funcs(funcs).ParseFS(templatesFS, "templates/rows.html")
	if err != nil {
		return nil, fmt.Errorf("parse rows: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/rows.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages, rows: rows}, nil
}

// Page writes a full page wrapped in the admin layout.
func (r *Renderer) Page(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// HTML writes a page with the given status, falling back to a plain 500.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.Page(&buf, name, data); err != nil {
		logger.Log.Errorw("failed to render page", "page", name, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Error writes the admin error page.
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	r.HTML(w, status, "error", errorPage{Status: status, Message: message})
}

// Rows renders one fragment per item.
func Rows[T any](r *Renderer, name string, items []T) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(items))
	var buf bytes.Buffer
	for i := range items {
		buf.Reset()
		if err := r.rows.ExecuteTemplate(&buf, name, &items[i]); err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}
