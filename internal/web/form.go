package web

import (
	"strings"

	"github.com/adibayu/corpsite/content/application"
	"github.com/adibayu/corpsite/content/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// postForm is the admin create/edit payload. Field order matters: the
// validator reports failures in declaration order and only the first
// message is shown.
type postForm struct {
	Title         string `validate:"required"`
	Slug          string `validate:"required"`
	Excerpt       string `validate:"required"`
	Content       string `validate:"required"`
	CoverImageURL string `validate:"required,http_url"`
	Category      string `validate:"required"`
	Status        string `validate:"oneof=draft published"`
	PublishedAt   string
}

// formMessages maps a failed field/tag pair to the message shown in the
// admin banner.
var formMessages = map[string]string{
	"Title/required":         "Title is required.",
	"Slug/required":          "Slug is required.",
	"Excerpt/required":       "Excerpt is required.",
	"Content/required":       "Content is required.",
	"CoverImageURL/required": "Cover image URL is required.",
	"CoverImageURL/http_url": "Cover image URL must be a valid http(s) URL.",
	"Category/required":      "Category is required.",
	"Status/oneof":           "Invalid status.",
}

// normalizePostForm reads and trims the form fields, deriving the slug
// from the title when no explicit slug is supplied.
func normalizePostForm(c *gin.Context) postForm {
	title := strings.TrimSpace(c.PostForm("title"))
	slugInput := strings.TrimSpace(c.PostForm("slug"))
	if slugInput == "" {
		slugInput = title
	}

	status := strings.TrimSpace(c.PostForm("status"))
	if status == "" {
		status = string(domain.StatusDraft)
	}

	return postForm{
		Title:         title,
		Slug:          application.SlugifyTitle(slugInput),
		Excerpt:       strings.TrimSpace(c.PostForm("excerpt")),
		Content:       strings.TrimSpace(c.PostForm("content")),
		CoverImageURL: strings.TrimSpace(c.PostForm("cover_image_url")),
		Category:      strings.TrimSpace(c.PostForm("category")),
		Status:        status,
		PublishedAt:   strings.TrimSpace(c.PostForm("published_at")),
	}
}

// validatePostForm returns the banner message for the first failed field,
// or "" when the form is acceptable. Validation always runs before any
// backend call.
func (h *Handler) validatePostForm(form postForm) string {
	err := h.validate.Struct(form)
	if err == nil {
		return ""
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		if msg, ok := formMessages[first.Field()+"/"+first.Tag()]; ok {
			return msg
		}
	}
	return "Invalid form submission."
}

func (f postForm) payload() domain.PostPayload {
	return domain.PostPayload{
		Title:         f.Title,
		Slug:          f.Slug,
		Excerpt:       f.Excerpt,
		Content:       f.Content,
		CoverImageURL: f.CoverImageURL,
		Category:      f.Category,
		Status:        domain.Status(f.Status),
		PublishedAt:   f.PublishedAt,
	}
}
