package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adibayu/corpsite/content/domain"
	"github.com/adibayu/corpsite/shared/supabase"
)

// newFakeService spins up a PostgREST-shaped test server and a remote
// store pointed at it.
func newFakeService(t *testing.T, handler http.HandlerFunc) *RemoteStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	factory := supabase.NewFactory(supabase.Config{URL: srv.URL, AnonKey: "test-key"})
	return NewRemoteStore(factory)
}

func TestRemoteStore_ListPostsSkipsMalformedRows(t *testing.T) {
	store := newFakeService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/posts" {
			t.Errorf("path = %q, want /rest/v1/posts", r.URL.Path)
		}
		if r.Header.Get("apikey") != "test-key" {
			t.Errorf("apikey header = %q, want test-key", r.Header.Get("apikey"))
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "a", "title": "First", "status": "published", "updated_at": "2026-05-01"},
			{"title": "No ID"},
			{"id": "b", "title": "Second", "status": "draft", "updated_at": "2026-05-02"},
		})
	})

	posts, err := store.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2 (malformed row dropped)", len(posts))
	}
	if posts[0].ID != "a" || posts[1].ID != "b" {
		t.Errorf("unexpected ids: %q, %q", posts[0].ID, posts[1].ID)
	}
}

func TestRemoteStore_GetPostMiss(t *testing.T) {
	store := newFakeService(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "eq.nope" {
			t.Errorf("id filter = %q, want eq.nope", got)
		}
		w.Write([]byte("[]"))
	})

	post, err := store.GetPost(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if post != nil {
		t.Errorf("GetPost = %+v, want nil on clean miss", post)
	}
}

func TestRemoteStore_CreatePost(t *testing.T) {
	store := newFakeService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if prefer := r.Header.Get("Prefer"); prefer != "return=representation" {
			t.Errorf("Prefer = %q, want return=representation", prefer)
		}

		var row map[string]any
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			t.Fatalf("failed to decode insert body: %v", err)
		}
		if row["published_at"] != nil {
			t.Errorf("published_at = %v, want null for empty value", row["published_at"])
		}

		row["id"] = "srv-1"
		row["updated_at"] = "2026-05-03T00:00:00Z"
		json.NewEncoder(w).Encode([]map[string]any{row})
	})

	created, err := store.CreatePost(context.Background(), domain.PostPayload{
		Title:         "New",
		Slug:          "new",
		Excerpt:       "e",
		Content:       "c",
		CoverImageURL: "https://example.com/x.jpg",
		Category:      "Market",
		Status:        domain.StatusDraft,
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if created.ID != "srv-1" {
		t.Errorf("ID = %q, want srv-1", created.ID)
	}
	if created.UpdatedAt != "2026-05-03T00:00:00Z" {
		t.Errorf("UpdatedAt = %q, want server value", created.UpdatedAt)
	}
}

func TestRemoteStore_QueryFailure(t *testing.T) {
	store := newFakeService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"relation does not exist"}`))
	})

	if _, err := store.ListPosts(context.Background()); err == nil {
		t.Fatal("expected error from failing backend")
	}
}

func TestRemoteStore_NilClient(t *testing.T) {
	factory := supabase.NewFactory(supabase.Config{})
	store := NewRemoteStore(factory)

	_, err := store.ListPosts(context.Background())
	if !errors.Is(err, domain.ErrClientUnavailable) {
		t.Errorf("err = %v, want ErrClientUnavailable", err)
	}

	if err := store.DeletePost(context.Background(), "x"); !errors.Is(err, domain.ErrClientUnavailable) {
		t.Errorf("delete err = %v, want ErrClientUnavailable", err)
	}
}

func TestRemoteStore_ListCategories(t *testing.T) {
	store := newFakeService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/categories" {
			t.Errorf("path = %q, want /rest/v1/categories", r.URL.Path)
		}
		if got := r.URL.Query().Get("order"); got != "name.asc" {
			t.Errorf("order = %q, want name.asc", got)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "cat-9", "name": "Alpha", "slug": "alpha", "description": "d"},
		})
	})

	categories, err := store.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Alpha" {
		t.Errorf("unexpected categories: %+v", categories)
	}
}
