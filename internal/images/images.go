// Package images maps catalog image descriptors onto the attributes a
// responsive <img> tag needs.
package images

import (
	"fmt"
	"sort"
	"strings"

	"millbrook.dev/catalog-web/internal/catalog"
)

// View carries everything the image partial binds into an <img> tag.
type View struct {
	Src    string
	SrcSet string
	Sizes  string
	Alt    string
	Class  string
}

const defaultSizes = "(max-width: 768px) 100vw, 66vw"

// For builds the view for an image descriptor. A nil descriptor yields nil,
// which templates treat as "omit the element" — callers do not need their own
// guard, though most have one anyway.
func For(img *catalog.Image, class string) *View {
	if img == nil || img.URL == "" {
		return nil
	}
	v := &View{
		Src:   img.URL,
		Alt:   img.Alt,
		Class: class,
		Sizes: defaultSizes,
	}
	if len(img.Variants) == 0 {
		return v
	}
	variants := make([]catalog.ImageVariant, 0, len(img.Variants))
	for _, va := range img.Variants {
		if va.URL == "" || va.Width <= 0 {
			continue
		}
		variants = append(variants, va)
	}
	sort.SliceStable(variants, func(i, j int) bool { return variants[i].Width < variants[j].Width })
	parts := make([]string, 0, len(variants))
	for _, va := range variants {
		parts = append(parts, fmt.Sprintf("%s %dw", va.URL, va.Width))
	}
	if len(parts) > 0 {
		v.SrcSet = strings.Join(parts, ", ")
		// largest variant as the fallback src
		v.Src = variants[len(variants)-1].URL
	}
	return v
}
