package store

import (
	"time"

	"github.com/adibayu/corpsite/content/domain"
)

// DefaultCoverImageURL is substituted for rows that arrive without a cover
// image. It matches the cover of the flagship seed insight.
const DefaultCoverImageURL = "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?auto=format&fit=crop&w=1600&q=80"

// SeedPosts returns the fixture content the mock store is seeded with.
// All six posts are published, so the public insight feed renders something
// plausible even with no backend configured.
func SeedPosts() []domain.Post {
	return []domain.Post{
		{
			ID:      "ins-1",
			Slug:    "building-resilient-industrial-value-chains",
			Title:   "Building Resilient Industrial Value Chains",
			Excerpt: "How governance alignment and operational discipline reinforce long-term performance across core sectors.",
			Content: "Resilience in industrial ecosystems is no longer optional. It is built through governance clarity, disciplined investment, and cross-sector collaboration.\n\n" +
				"At Adibayu Group, value creation begins with strong operational foundations and clear strategic accountability. We focus on integrating manufacturing, distribution, and retail capabilities so each enterprise contributes to shared strength.\n\n" +
				"This approach enables faster adaptation to market shifts while preserving execution quality. By strengthening decision architecture and operating standards, holding structures can turn complexity into coordinated momentum.",
			Category:      string(domain.CategoryCorporateStrategy),
			Status:        domain.StatusPublished,
			PublishedAt:   "2026-02-10",
			UpdatedAt:     "2026-02-10",
			CoverImageURL: "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?auto=format&fit=crop&w=1600&q=80",
		},
		{
			ID:      "ins-2",
			Slug:    "distribution-excellence-in-fragmented-markets",
			Title:   "Distribution Excellence in Fragmented Markets",
			Excerpt: "Practical frameworks to improve reliability, speed, and cost control in national distribution networks.",
			Content: "Distribution performance determines whether strategic intent becomes market reality. In fragmented markets, consistent service levels depend on process standardization and data-led planning.\n\n" +
				"Leading groups optimize network design, route discipline, and inventory synchronization. They also align commercial and operational teams around measurable service outcomes.\n\n" +
				"The result is stronger market access, healthier margins, and improved resilience under demand volatility.",
			Category:      string(domain.CategoryOperations),
			Status:        domain.StatusPublished,
			PublishedAt:   "2026-02-05",
			UpdatedAt:     "2026-02-05",
			CoverImageURL: "https://images.unsplash.com/photo-1494412651409-8963ce7935a7?auto=format&fit=crop&w=1600&q=80",
		},
		{
			ID:      "ins-3",
			Slug:    "retail-performance-through-operating-rhythm",
			Title:   "Retail Performance Through Operating Rhythm",
			Excerpt: "A disciplined operating cadence helps retail organizations scale quality while protecting brand consistency.",
			Content: "Retail growth is sustainable when operating rhythm is clear. High-performing organizations maintain governance routines that connect strategy to daily execution.\n\n" +
				"From category planning to in-store standards, each process must support a consistent customer experience. Holdings can accelerate this by sharing best practices and performance playbooks across entities.\n\n" +
				"Consistency at scale is not achieved through complexity, but through practical systems and accountable leadership.",
			Category:      string(domain.CategoryMarket),
			Status:        domain.StatusPublished,
			PublishedAt:   "2026-01-30",
			UpdatedAt:     "2026-01-30",
			CoverImageURL: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&w=1600&q=80",
		},
		{
			ID:      "ins-4",
			Slug:    "institutional-governance-as-a-growth-multiplier",
			Title:   "Institutional Governance as a Growth Multiplier",
			Excerpt: "Strong governance systems create confidence, improve execution quality, and reduce strategic drift.",
			Content: "Institutional governance supports durable growth by creating clarity in authority, accountability, and oversight.\n\n" +
				"For diversified groups, this means balancing strategic direction from the holding level with operating autonomy at each enterprise. When governance is practical and transparent, organizations move faster with lower execution risk.\n\n" +
				"The long-term effect is stronger investor confidence and better outcomes across business cycles.",
			Category:      string(domain.CategoryCorporateStrategy),
			Status:        domain.StatusPublished,
			PublishedAt:   "2026-01-22",
			UpdatedAt:     "2026-01-22",
			CoverImageURL: "https://images.unsplash.com/photo-1460472178825-e5240623afd5?auto=format&fit=crop&w=1600&q=80",
		},
		{
			ID:      "ins-5",
			Slug:    "embedding-sustainability-into-core-operations",
			Title:   "Embedding Sustainability Into Core Operations",
			Excerpt: "Long-term value emerges when sustainability is integrated into operating decisions, not treated as a side program.",
			Content: "Sustainability contributes most when embedded into procurement, production, and distribution decisions.\n\n" +
				"Forward-looking groups align environmental and social targets with operational metrics, making progress measurable and actionable.\n\n" +
				"This integration strengthens competitiveness, supports risk management, and improves long-term stakeholder trust.",
			Category:      string(domain.CategorySustainability),
			Status:        domain.StatusPublished,
			PublishedAt:   "2026-01-16",
			UpdatedAt:     "2026-01-16",
			CoverImageURL: "https://images.unsplash.com/photo-1497366754035-f200968a6e72?auto=format&fit=crop&w=1600&q=80",
		},
		{
			ID:      "ins-6",
			Slug:    "from-holding-structure-to-ecosystem-advantage",
			Title:   "From Holding Structure to Ecosystem Advantage",
			Excerpt: "How integrated holdings convert portfolio breadth into coordinated strategic advantage.",
			Content: "A holding structure becomes an ecosystem advantage when it actively orchestrates capabilities across entities.\n\n" +
				"This requires clear strategic themes, disciplined resource allocation, and shared operating frameworks that elevate execution quality.\n\n" +
				"When done well, groups improve resilience, accelerate capability building, and capture value beyond standalone performance.",
			Category:      string(domain.CategoryCorporateStrategy),
			Status:        domain.StatusPublished,
			PublishedAt:   "2026-01-09",
			UpdatedAt:     "2026-01-09",
			CoverImageURL: "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?auto=format&fit=crop&w=1600&q=80",
		},
	}
}

// FallbackCategories is the fixed taxonomy served whenever the remote
// categories table is unavailable, and always in mock mode.
func FallbackCategories() []domain.Category {
	now := time.Now().UTC().Format(time.RFC3339)
	return []domain.Category{
		{
			ID:          "cat-1",
			Name:        "Corporate Strategy",
			Slug:        "corporate-strategy",
			Description: "Strategic direction, governance, and portfolio orchestration.",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "cat-2",
			Name:        "Operations",
			Slug:        "operations",
			Description: "Operational excellence across production and distribution.",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "cat-3",
			Name:        "Market",
			Slug:        "market",
			Description: "Market insights, channel growth, and commercial execution.",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "cat-4",
			Name:        "Sustainability",
			Slug:        "sustainability",
			Description: "Long-term environmental and social value creation.",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
