// Package application holds the content repository: a uniform facade over
// posts that dispatches to whichever backend was selected at startup and
// keeps the public insight feed alive when that backend is down.
package application

import (
	"context"

	"github.com/adibayu/corpsite/content/domain"
	"github.com/adibayu/corpsite/content/store"
	"github.com/rs/zerolog/log"
)

// Repository is the content data access layer.
//
// backend is whichever store was selected at startup. local is always the
// in-memory seed store; it doubles as the last-resort corpus for the public
// feed when the remote backend fails. In mock mode both fields are the same
// instance.
type Repository struct {
	backend domain.Backend
	local   *store.MemoryStore
}

// NewRepository builds the facade over the selected backend.
func NewRepository(backend domain.Backend, local *store.MemoryStore) *Repository {
	return &Repository{backend: backend, local: local}
}

// ListPosts returns every post, drafts included, most recently updated
// first. This is the admin listing: backend failures surface to the caller
// instead of being masked.
func (r *Repository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := r.backend.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return sortPostsByUpdatedAt(posts), nil
}

// GetPostByID finds a post by id. A failed lookup is indistinguishable from
// an absent post: both read as nil.
func (r *Repository) GetPostByID(ctx context.Context, id string) *domain.Post {
	post, err := r.backend.GetPost(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("Post lookup failed")
		return nil
	}
	return post
}

// CreatePost stores a new post. The backend assigns id and updated_at.
func (r *Repository) CreatePost(ctx context.Context, payload domain.PostPayload) (*domain.Post, error) {
	return r.backend.CreatePost(ctx, payload)
}

// UpdatePost merges the payload over the stored post and refreshes
// updated_at. A missing id yields a nil post from the mock store; the
// remote backend reports it as an error.
func (r *Repository) UpdatePost(ctx context.Context, id string, payload domain.PostPayload) (*domain.Post, error) {
	return r.backend.UpdatePost(ctx, id, payload)
}

// DeletePost removes a post. Deleting an absent id in mock mode is a no-op.
func (r *Repository) DeletePost(ctx context.Context, id string) error {
	return r.backend.DeletePost(ctx, id)
}

// ListPublishedInsights is the public feed and must never fail: if the
// backend cannot be read, the same pipeline runs over the local seed data.
// The fallback is per call, not sticky; the next call re-attempts the
// backend. A limit of zero or less means unbounded.
func (r *Repository) ListPublishedInsights(ctx context.Context, limit int) []domain.Insight {
	posts, err := r.backend.ListPosts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Falling back to local content for the insight feed")
		posts, _ = r.local.ListPosts(ctx)
	}
	return publishedInsights(posts, limit)
}

// GetPublishedInsightBySlug resolves a published insight by slug. Slugs are
// not enforced unique; the first match in recency order wins.
func (r *Repository) GetPublishedInsightBySlug(ctx context.Context, slug string) *domain.Insight {
	for _, insight := range r.ListPublishedInsights(ctx, 0) {
		if insight.Slug == slug {
			return &insight
		}
	}
	return nil
}

// ListCategories returns the taxonomy, name-ascending from the backend or
// the fixed fallback list when the backend cannot serve it.
func (r *Repository) ListCategories(ctx context.Context) []domain.Category {
	categories, err := r.backend.ListCategories(ctx)
	if err != nil || len(categories) == 0 {
		if err != nil {
			log.Warn().Err(err).Msg("Falling back to fixed category list")
		}
		return store.FallbackCategories()
	}
	return categories
}
