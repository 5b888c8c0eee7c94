package web

import (
	"bytes"
	"html/template"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownRenderer converts insight body text, which is paragraph-delimited
// markdown, into HTML for the detail page.
type markdownRenderer struct {
	md goldmark.Markdown
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Render converts source to HTML. On a conversion failure the raw text is
// shown instead; a bad insight body should not blank the page.
func (r *markdownRenderer) Render(source string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		log.Error().Err(err).Msg("Failed to render insight body")
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}
