package web

import (
	"embed"
	"html/template"

	"github.com/gin-contrib/multitemplate"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// NewRenderer composes each page template with the shared base layout.
func NewRenderer() multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	add := func(name string, files ...string) {
		paths := make([]string, 0, len(files))
		for _, f := range files {
			paths = append(paths, "templates/"+f)
		}
		r.Add(name, template.Must(template.ParseFS(templatesFS, paths...)))
	}

	add("home.html", "base.html", "home.html")
	add("insights.html", "base.html", "insights.html")
	add("insight.html", "base.html", "insight.html")
	add("login.html", "base.html", "login.html")
	add("admin_posts.html", "base.html", "admin_posts.html")
	add("editor.html", "base.html", "editor.html")
	add("404.html", "base.html", "404.html")

	return r
}
