package domain

import (
	"context"
	"errors"
)

// Status governs a post's visibility in public listings.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// IsValid reports whether s is one of the two recognised statuses.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Post is the canonical authored content record.
// Timestamps are kept as ISO-8601 strings because that is what the backing
// service stores; they are parsed only where ordering requires it.
type Post struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	CoverImageURL string `json:"cover_image_url"`
	Category      string `json:"category"`
	Status        Status `json:"status"`
	PublishedAt   string `json:"published_at,omitempty"`
	UpdatedAt     string `json:"updated_at"`
}

// PostPayload carries the user-supplied fields of a post.
// ID and UpdatedAt are system-assigned and never accepted from callers.
type PostPayload struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	CoverImageURL string
	Category      string
	Status        Status
	PublishedAt   string
}

// InsightCategory is the closed display vocabulary for published insights.
type InsightCategory string

const (
	CategoryCorporateStrategy InsightCategory = "Corporate Strategy"
	CategoryOperations        InsightCategory = "Operations"
	CategoryMarket            InsightCategory = "Market"
	CategorySustainability    InsightCategory = "Sustainability"
)

// Insight is the read-only public projection of a published Post.
// The mapping from Post is lossy and never reversed.
type Insight struct {
	ID            string          `json:"id"`
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	Excerpt       string          `json:"excerpt"`
	Content       string          `json:"content"`
	Category      InsightCategory `json:"category"`
	Date          string          `json:"date"`
	CoverImageURL string          `json:"coverImageUrl"`
}

// Category is a taxonomy entry. Read-only from the repository's
// perspective; there is no create/update/delete path for categories.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ErrClientUnavailable is returned by a remote-backed operation when the
// client could not be constructed, typically because the service
// configuration is incomplete.
var ErrClientUnavailable = errors.New("supabase client unavailable")

// Backend is a uniform store of posts and categories. Two implementations
// exist: the remote data service and the in-memory mock store. The backend
// is selected once at startup and injected; callers never branch on
// configuration themselves.
//
// Lookups report absence as a nil post with a nil error. Errors are
// reserved for transport and query failures.
type Backend interface {
	ListPosts(ctx context.Context) ([]Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	CreatePost(ctx context.Context, payload PostPayload) (*Post, error)
	UpdatePost(ctx context.Context, id string, payload PostPayload) (*Post, error)
	DeletePost(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]Category, error)
}
