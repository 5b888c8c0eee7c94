package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adibayu/corpsite/content/domain"
)

var _ domain.Backend = (*MemoryStore)(nil)

// isoMillis matches the millisecond-precision ISO-8601 form the remote
// service writes, so mock-mode timestamps sort interchangeably with real ones.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// MemoryStore is the in-process mock backend: an ordered, mutable
// collection of canonical posts seeded from fixture content. It offers no
// durability and no uniqueness enforcement; it exists so the site works
// with no remote service configured.
//
// Every read hands out copies, so callers can never alias the internal
// slice. Mutations are serialized with a mutex.
type MemoryStore struct {
	mu    sync.RWMutex
	posts []domain.Post

	now func() time.Time
}

// NewMemoryStore builds a store holding a copy of seed.
func NewMemoryStore(seed []domain.Post) *MemoryStore {
	posts := make([]domain.Post, len(seed))
	copy(posts, seed)
	return &MemoryStore{
		posts: posts,
		now:   time.Now,
	}
}

// ListPosts returns a copy of the current contents, in insertion order.
// Ordering by recency is the repository's concern.
func (s *MemoryStore) ListPosts(ctx context.Context) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

// GetPost finds a post by id. Absence is a nil post, not an error.
func (s *MemoryStore) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

// CreatePost synthesizes a local id and timestamp and prepends the post.
// Insertion position is irrelevant to callers since listings re-sort by
// updated_at.
func (s *MemoryStore) CreatePost(ctx context.Context, payload domain.PostPayload) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	post := domain.Post{
		ID:            fmt.Sprintf("local-%d", now.UnixNano()),
		Title:         payload.Title,
		Slug:          payload.Slug,
		Excerpt:       payload.Excerpt,
		Content:       payload.Content,
		CoverImageURL: payload.CoverImageURL,
		Category:      payload.Category,
		Status:        payload.Status,
		PublishedAt:   payload.PublishedAt,
		UpdatedAt:     now.Format(isoMillis),
	}

	next := make([]domain.Post, 0, len(s.posts)+1)
	next = append(next, post)
	next = append(next, s.posts...)
	s.posts = next

	return &post, nil
}

// UpdatePost merges the payload over the stored post and refreshes
// updated_at. A missing id yields a nil post, not an error.
func (s *MemoryStore) UpdatePost(ctx context.Context, id string, payload domain.PostPayload) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}

		updated := s.posts[i]
		updated.Title = payload.Title
		updated.Slug = payload.Slug
		updated.Excerpt = payload.Excerpt
		updated.Content = payload.Content
		updated.CoverImageURL = payload.CoverImageURL
		updated.Category = payload.Category
		updated.Status = payload.Status
		updated.PublishedAt = payload.PublishedAt
		updated.UpdatedAt = s.now().UTC().Format(isoMillis)

		next := make([]domain.Post, len(s.posts))
		copy(next, s.posts)
		next[i] = updated
		s.posts = next

		return &updated, nil
	}

	return nil, nil
}

// DeletePost removes the post with the given id. Deleting an id that does
// not exist is a no-op.
func (s *MemoryStore) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.posts = next
	return nil
}

// ListCategories always serves the fixed fallback taxonomy in mock mode.
func (s *MemoryStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return FallbackCategories(), nil
}
