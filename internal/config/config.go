// Package config provides runtime configuration values for the storefront.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the knobs the web server needs at startup. Catalog data itself
// is never configured here; it comes from the CMS (or the local content
// directory when no CMS endpoint is set).
type Config struct {
	Addr         string
	CMSBaseURL   string
	ContentDir   string
	TemplatesDir string
	PublicDir    string
	BaseURL      string // absolute site URL used for canonical/OG links
	Dev          bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from an optional .env file and the environment.
// Flags in main may override individual fields afterwards.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("config: loaded .env")
	}
	// Port resolution: prefer CATALOG_WEB_PORT, then PORT, else 8080
	port := os.Getenv("CATALOG_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	return Config{
		Addr:         ":" + port,
		CMSBaseURL:   os.Getenv("CATALOG_WEB_CMS_URL"),
		ContentDir:   getenv("CATALOG_WEB_CONTENT_DIR", "content"),
		TemplatesDir: getenv("CATALOG_WEB_TEMPLATES_DIR", "templates"),
		PublicDir:    getenv("CATALOG_WEB_PUBLIC_DIR", "public"),
		BaseURL:      os.Getenv("CATALOG_WEB_BASE_URL"),
		Dev:          os.Getenv("CATALOG_WEB_DEV") != "" || os.Getenv("DEV") != "",
	}
}
