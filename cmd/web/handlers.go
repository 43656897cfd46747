package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"millbrook.dev/catalog-web/internal/catalog"
	"millbrook.dev/catalog-web/internal/config"
	"millbrook.dev/catalog-web/internal/handlers"
	"millbrook.dev/catalog-web/internal/markdown"
	mw "millbrook.dev/catalog-web/internal/middleware"
)

// App holds the immutable state behind every handler: the catalog snapshot,
// the markdown renderer and the parsed template cache.
type App struct {
	cfg       config.Config
	snapshot  *catalog.Snapshot
	markdown  *markdown.Renderer
	tmplCache *template.Template
}

func (a *App) parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		// JSON-LD payloads are marshalled server-side; emit them verbatim
		// inside the script tag instead of JS-string escaping them.
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
	// Recursively discover and parse all .tmpl files. ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(a.cfg.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", a.cfg.TemplatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func (a *App) templates(w http.ResponseWriter) *template.Template {
	if !a.cfg.Dev && a.tmplCache != nil {
		return a.tmplCache
	}
	tc, err := a.parseTemplates()
	if err != nil {
		http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
		return nil
	}
	return tc
}

// render executes the base layout.
func (a *App) render(w http.ResponseWriter, r *http.Request, data handlers.PageData) {
	t := a.templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// renderFragment executes a single named partial for HTMX swaps.
func (a *App) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := a.templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render fragment %s: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (a *App) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if mw.IsHTMX(r.Context()) {
		mw.WriteError(w, r, status, message)
		return
	}
	t := a.templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base", handlers.BuildError(status, message)); err != nil {
		log.Printf("render error page: %v", err)
	}
}

// Healthz reports liveness plus the catalog build being served.
func (a *App) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Catalog-Build", a.snapshot.BuildID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// CategoryIndex renders the "/" page.
func (a *App) CategoryIndex(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, handlers.BuildCategoryIndex(a.snapshot.Categories(), a.cfg.BaseURL))
}

// CategoryPage renders one category's product grid. The search box submits
// back here with ?q=; HTMX requests get just the grid fragment so typing
// filters without a full page load.
func (a *App) CategoryPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	c, ok := a.snapshot.CategoryBySlug(slug)
	if !ok {
		a.renderError(w, r, http.StatusNotFound, "category not found")
		return
	}
	query := r.URL.Query().Get("q")
	pd := handlers.BuildCategory(c, a.snapshot.ProductsInCategory(slug), query, a.cfg.BaseURL)
	a.renderListing(w, r, pd)
}

// ProductsPage renders the all-products grid behind the top nav, with the
// same search behavior as a category page.
func (a *App) ProductsPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	pd := handlers.BuildProducts(a.snapshot.Products(), query, a.cfg.BaseURL)
	a.renderListing(w, r, pd)
}

// renderListing answers a listing page either in full or, for HTMX requests,
// as just the grid fragment with the filtered URL pushed to the client.
func (a *App) renderListing(w http.ResponseWriter, r *http.Request, pd handlers.PageData) {
	if mw.IsHTMX(r.Context()) {
		pushURL := pd.Path
		if pd.Category.Query != "" {
			pushURL += "?q=" + url.QueryEscape(pd.Category.Query)
		}
		w.Header().Set("HX-Push-Url", pushURL)
		a.renderFragment(w, r, "product_grid", pd.Category)
		return
	}
	a.render(w, r, pd)
}

// ProductPage renders a product detail page.
func (a *App) ProductPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, ok := a.snapshot.ProductBySlug(slug)
	if !ok {
		a.renderError(w, r, http.StatusNotFound, "product not found")
		return
	}
	a.render(w, r, handlers.BuildProduct(p, a.markdown, a.cfg.BaseURL))
}

// NotFound renders the shared error page for unknown routes.
func (a *App) NotFound(w http.ResponseWriter, r *http.Request) {
	a.renderError(w, r, http.StatusNotFound, "page not found")
}
