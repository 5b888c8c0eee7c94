package application

import "github.com/gosimple/slug"

// SlugifyTitle derives a URL-safe slug from a display title. The system
// never enforces slug uniqueness; the slug is simply the external lookup
// key for published content.
func SlugifyTitle(title string) string {
	return slug.Make(title)
}
