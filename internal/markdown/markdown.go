// Package markdown converts CMS-authored markdown into sanitized HTML for
// inline rendering. CMS editors are trusted-ish, but their content passes
// through an HTML sanitizer anyway so a pasted script tag never reaches a
// page.
package markdown

import (
	"bytes"
	"html/template"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts markdown to sanitized HTML. The zero value is not usable;
// construct with New.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New builds a renderer with GFM tables/strikethrough/autolinks enabled and a
// UGC sanitization policy.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts src to HTML safe for direct template interpolation. Empty
// or whitespace-only input renders as nothing. A conversion failure is logged
// and renders as nothing rather than breaking the page.
func (r *Renderer) Render(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		log.Printf("markdown: convert: %v", err)
		return ""
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}
