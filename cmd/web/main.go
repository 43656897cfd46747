package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"millbrook.dev/catalog-web/internal/catalog"
	"millbrook.dev/catalog-web/internal/cms"
	"millbrook.dev/catalog-web/internal/config"
	"millbrook.dev/catalog-web/internal/markdown"
	mw "millbrook.dev/catalog-web/internal/middleware"
)

func main() {
	cfg := config.Load()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&cfg.CMSBaseURL, "cms", cfg.CMSBaseURL, "CMS base URL (empty: serve local fixtures)")
	flag.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "local catalog fixtures directory")
	flag.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory")
	flag.Parse()

	// The catalog is fetched exactly once: a broken catalog aborts startup
	// instead of serving half a storefront.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client := cms.NewClient(cfg.CMSBaseURL, cfg.ContentDir)
	categories, products, err := client.Load(ctx)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	snapshot, err := catalog.NewSnapshot(categories, products)
	if err != nil {
		log.Fatalf("index catalog: %v", err)
	}
	log.Printf("catalog build %s: %d categories, %d products", snapshot.BuildID, len(categories), len(products))

	app := &App{
		cfg:      cfg,
		snapshot: snapshot,
		markdown: markdown.New(),
	}
	if !cfg.Dev {
		tc, err := app.parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		app.tmplCache = tc
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Printf("storefront listening on %s (dev=%v)", cfg.Addr, cfg.Dev)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

func newRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", app.Healthz)

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(app.cfg.PublicDir+"/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/", app.CategoryIndex)
	r.Get("/categories/{slug}", app.CategoryPage)
	r.Get("/products", app.ProductsPage)
	r.Get("/products/{slug}", app.ProductPage)

	r.NotFound(app.NotFound)
	return r
}
