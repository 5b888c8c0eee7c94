package store

import (
	"context"
	"fmt"
	"net/url"

	"github.com/adibayu/corpsite/content/domain"
	"github.com/adibayu/corpsite/shared/supabase"
	"github.com/rs/zerolog/log"
)

var _ domain.Backend = (*RemoteStore)(nil)

// RemoteStore is the backend over the hosted data service. A fresh client
// is built for every call so each request carries its own session; only the
// configuration decision is shared.
type RemoteStore struct {
	clients supabase.Factory
}

// NewRemoteStore builds a remote backend around a client factory.
func NewRemoteStore(clients supabase.Factory) *RemoteStore {
	return &RemoteStore{clients: clients}
}

func (s *RemoteStore) client(ctx context.Context) (*supabase.Client, error) {
	c := s.clients(ctx)
	if c == nil {
		return nil, domain.ErrClientUnavailable
	}
	return c, nil
}

// ListPosts fetches every row from the posts table and normalizes each one.
// Rows that cannot be normalized are dropped with a warning rather than
// poisoning the whole listing.
func (s *RemoteStore) ListPosts(ctx context.Context) ([]domain.Post, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := client.Select(ctx, "posts", url.Values{"select": {"*"}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		post, repaired, err := ParsePostRow(row)
		if err != nil {
			log.Warn().Err(err).Msg("Dropping malformed post row")
			continue
		}
		if len(repaired) > 0 {
			log.Warn().Str("id", post.ID).Strs("fields", repaired).Msg("Repaired post row with default values")
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// GetPost fetches a single post by id. A clean miss is a nil post.
func (s *RemoteStore) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"select": {"*"},
		"id":     {"eq." + id},
		"limit":  {"1"},
	}
	rows, err := client.Select(ctx, "posts", query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	post, repaired, err := ParsePostRow(rows[0])
	if err != nil {
		return nil, fmt.Errorf("malformed post row for %s: %w", id, err)
	}
	if len(repaired) > 0 {
		log.Warn().Str("id", post.ID).Strs("fields", repaired).Msg("Repaired post row with default values")
	}
	return &post, nil
}

// CreatePost inserts a row and returns the stored representation. The
// backend assigns id and updated_at.
func (s *RemoteStore) CreatePost(ctx context.Context, payload domain.PostPayload) (*domain.Post, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	row, err := client.Insert(ctx, "posts", payloadRow(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	post, _, err := ParsePostRow(row)
	if err != nil {
		return nil, fmt.Errorf("malformed row returned on create: %w", err)
	}
	return &post, nil
}

// UpdatePost patches the row with the given id. The service reports a
// missing id as an error, and that error is surfaced unchanged.
func (s *RemoteStore) UpdatePost(ctx context.Context, id string, payload domain.PostPayload) (*domain.Post, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	row, err := client.Update(ctx, "posts", id, payloadRow(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", id, err)
	}

	post, _, err := ParsePostRow(row)
	if err != nil {
		return nil, fmt.Errorf("malformed row returned on update: %w", err)
	}
	return &post, nil
}

// DeletePost removes the row with the given id.
func (s *RemoteStore) DeletePost(ctx context.Context, id string) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}

	if err := client.Delete(ctx, "posts", id); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	return nil
}

// ListCategories fetches the taxonomy ordered by name.
func (s *RemoteStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"select": {"id,name,slug,description,created_at,updated_at"},
		"order":  {"name.asc"},
	}
	rows, err := client.Select(ctx, "categories", query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, parseCategoryRow(row))
	}
	return categories, nil
}

// payloadRow shapes a payload for the wire. published_at is a nullable
// column; an empty value must go out as null, not "".
func payloadRow(p domain.PostPayload) map[string]any {
	row := map[string]any{
		"title":           p.Title,
		"slug":            p.Slug,
		"excerpt":         p.Excerpt,
		"content":         p.Content,
		"cover_image_url": p.CoverImageURL,
		"category":        p.Category,
		"status":          string(p.Status),
	}
	if p.PublishedAt == "" {
		row["published_at"] = nil
	} else {
		row["published_at"] = p.PublishedAt
	}
	return row
}
