package application

import (
	"sort"
	"time"

	"github.com/adibayu/corpsite/content/domain"
)

// timestampLayouts covers the forms timestamps appear in: full ISO-8601
// from the remote service (with or without sub-second precision) and bare
// dates from fixture content.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// sortPostsByUpdatedAt orders posts most-recently-updated first. The sort
// is stable, so within a tie the store's insertion order holds.
func sortPostsByUpdatedAt(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		return parseTimestamp(out[i].UpdatedAt).After(parseTimestamp(out[j].UpdatedAt))
	})
	return out
}

// recency takes the later of a post's updated and published timestamps.
// Either one may be absent or malformed; an unparseable value reads as the
// zero time.
func recency(p domain.Post) time.Time {
	updated := parseTimestamp(p.UpdatedAt)
	published := parseTimestamp(p.PublishedAt)
	if published.After(updated) {
		return published
	}
	return updated
}

// mapPostToInsight projects a published post into its public shape. The
// mapping is lossy: free-text categories collapse into the fixed display
// vocabulary, and unknown values read as Corporate Strategy.
func mapPostToInsight(p domain.Post) domain.Insight {
	category := domain.CategoryCorporateStrategy
	switch domain.InsightCategory(p.Category) {
	case domain.CategoryOperations, domain.CategoryMarket, domain.CategorySustainability:
		category = domain.InsightCategory(p.Category)
	}

	date := p.PublishedAt
	if date == "" {
		date = p.UpdatedAt
	}
	if len(date) >= 10 {
		date = date[:10]
	}

	return domain.Insight{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		Category:      category,
		Date:          date,
		CoverImageURL: p.CoverImageURL,
	}
}

// publishedInsights runs the projection pipeline: keep published posts,
// order by recency, map, truncate. A limit of zero or less means unbounded.
func publishedInsights(posts []domain.Post, limit int) []domain.Insight {
	published := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status == domain.StatusPublished {
			published = append(published, p)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		return recency(published[i]).After(recency(published[j]))
	})

	insights := make([]domain.Insight, 0, len(published))
	for _, p := range published {
		insights = append(insights, mapPostToInsight(p))
	}

	if limit > 0 && limit < len(insights) {
		insights = insights[:limit]
	}
	return insights
}
