package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/adibayu/corpsite/content/domain"
)

func testPayload() domain.PostPayload {
	return domain.PostPayload{
		Title:         "Quarterly Outlook",
		Slug:          "quarterly-outlook",
		Excerpt:       "A short summary.",
		Content:       "First paragraph.\n\nSecond paragraph.",
		CoverImageURL: "https://example.com/cover.jpg",
		Category:      "Operations",
		Status:        domain.StatusDraft,
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	created, err := s.CreatePost(ctx, testPayload())
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if !strings.HasPrefix(created.ID, "local-") {
		t.Errorf("ID = %q, want local- prefix", created.ID)
	}
	if created.UpdatedAt == "" {
		t.Error("UpdatedAt not assigned")
	}

	got, err := s.GetPost(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetPost returned nil for existing post")
	}
	if got.Title != "Quarterly Outlook" {
		t.Errorf("Title = %q, want %q", got.Title, "Quarterly Outlook")
	}
	if got.Status != domain.StatusDraft {
		t.Errorf("Status = %q, want draft", got.Status)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore(SeedPosts())

	got, err := s.GetPost(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got != nil {
		t.Errorf("GetPost(nope) = %+v, want nil", got)
	}
}

func TestMemoryStore_UpdateMissing(t *testing.T) {
	s := NewMemoryStore(nil)

	got, err := s.UpdatePost(context.Background(), "nope", testPayload())
	if err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}
	if got != nil {
		t.Errorf("UpdatePost on missing id = %+v, want nil", got)
	}
}

func TestMemoryStore_UpdateRefreshesTimestamp(t *testing.T) {
	s := NewMemoryStore(SeedPosts())
	s.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	payload := testPayload()
	payload.Status = domain.StatusPublished

	updated, err := s.UpdatePost(ctx, "ins-1", payload)
	if err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}
	if updated == nil {
		t.Fatal("UpdatePost returned nil for existing post")
	}
	if updated.UpdatedAt != "2026-08-01T12:00:00.000Z" {
		t.Errorf("UpdatedAt = %q, want refreshed timestamp", updated.UpdatedAt)
	}
	if updated.ID != "ins-1" {
		t.Errorf("ID = %q, want unchanged ins-1", updated.ID)
	}
	if updated.Title != payload.Title {
		t.Errorf("Title = %q, want %q", updated.Title, payload.Title)
	}
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	s := NewMemoryStore(SeedPosts())
	ctx := context.Background()

	if err := s.DeletePost(ctx, "ins-2"); err != nil {
		t.Fatalf("first DeletePost failed: %v", err)
	}
	if err := s.DeletePost(ctx, "ins-2"); err != nil {
		t.Fatalf("second DeletePost failed: %v", err)
	}

	got, err := s.GetPost(ctx, "ins-2")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got != nil {
		t.Error("deleted post still present")
	}

	posts, _ := s.ListPosts(ctx)
	if len(posts) != len(SeedPosts())-1 {
		t.Errorf("post count = %d, want %d", len(posts), len(SeedPosts())-1)
	}
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	s := NewMemoryStore(SeedPosts())
	ctx := context.Background()

	first, _ := s.ListPosts(ctx)
	first[0].Title = "mutated"

	second, _ := s.ListPosts(ctx)
	if second[0].Title == "mutated" {
		t.Error("mutating a listing leaked into the store")
	}
}

func TestMemoryStore_SeedIsCopied(t *testing.T) {
	seed := SeedPosts()
	s := NewMemoryStore(seed)

	seed[0].Title = "mutated"

	got, _ := s.GetPost(context.Background(), seed[0].ID)
	if got == nil {
		t.Fatal("seed post missing")
	}
	if got.Title == "mutated" {
		t.Error("mutating the seed slice leaked into the store")
	}
}
