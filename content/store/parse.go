package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/adibayu/corpsite/content/domain"
)

// ParsePostRow normalizes a raw backend row into a canonical post.
//
// The remote schema is not under this process's control, so missing fields
// are filled with documented defaults rather than rejected. Every repaired
// field is reported so the caller can log it; a row without an id is
// unusable (later update/delete calls would misbehave against an invented
// key) and is rejected outright.
func ParsePostRow(row map[string]any) (domain.Post, []string, error) {
	var repaired []string

	id := stringField(row, "id")
	if id == "" {
		return domain.Post{}, nil, fmt.Errorf("post row has no id")
	}

	title := stringField(row, "title")
	if title == "" {
		title = "Untitled Insight"
		repaired = append(repaired, "title")
	}

	slug := stringField(row, "slug")
	if slug == "" {
		slug = "untitled-insight"
		repaired = append(repaired, "slug")
	}

	cover := stringField(row, "cover_image_url")
	if cover == "" {
		cover = DefaultCoverImageURL
		repaired = append(repaired, "cover_image_url")
	}

	category := stringField(row, "category")
	if category == "" {
		category = string(domain.CategoryCorporateStrategy)
		repaired = append(repaired, "category")
	}

	// Anything that is not literally "published" is a draft.
	status := domain.Status(stringField(row, "status"))
	if status != domain.StatusPublished {
		if status != domain.StatusDraft {
			repaired = append(repaired, "status")
		}
		status = domain.StatusDraft
	}

	updatedAt := stringField(row, "updated_at")
	if updatedAt == "" {
		updatedAt = time.Now().UTC().Format(isoMillis)
		repaired = append(repaired, "updated_at")
	}

	publishedAt := stringField(row, "published_at")
	if publishedAt == "" {
		publishedAt = updatedAt
	}

	return domain.Post{
		ID:            id,
		Title:         title,
		Slug:          slug,
		Excerpt:       stringField(row, "excerpt"),
		Content:       stringField(row, "content"),
		CoverImageURL: cover,
		Category:      category,
		Status:        status,
		PublishedAt:   publishedAt,
		UpdatedAt:     updatedAt,
	}, repaired, nil
}

// parseCategoryRow maps a raw categories row. Category rows have no
// defaulting contract; blank fields stay blank.
func parseCategoryRow(row map[string]any) domain.Category {
	return domain.Category{
		ID:          stringField(row, "id"),
		Name:        stringField(row, "name"),
		Slug:        stringField(row, "slug"),
		Description: stringField(row, "description"),
		CreatedAt:   stringField(row, "created_at"),
		UpdatedAt:   stringField(row, "updated_at"),
	}
}

// stringField coerces a JSON value to a string. Numbers are common for id
// columns; anything else unexpected collapses to "".
func stringField(row map[string]any, key string) string {
	switch v := row[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
