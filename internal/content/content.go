// internal/content/content.go
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Mythicool/vaporlax/internal/models"
)

//go:embed blog.json
var blogData []byte

//go:embed events.json
var eventsData []byte

//go:embed promotions.json
var promotionsData []byte

//go:embed testimonials.json
var testimonialsData []byte

//go:embed faq.json
var faqData []byte

type blogFile struct {
	Authors    []models.BlogAuthor   `json:"authors"`
	Categories []models.BlogCategory `json:"categories"`
	Posts      []models.BlogPost     `json:"posts"`
}

// Library is the loaded marketing content: blog, events, promotions,
// testimonials and FAQ. Like the catalog it is immutable once loaded.
type Library struct {
	Authors      []models.BlogAuthor
	Categories   []models.BlogCategory
	Posts        []models.BlogPost
	Events       []models.Event
	Promotions   []models.Promotion
	Testimonials []models.Testimonial
	FAQ          []models.FAQEntry
}

// Load parses all embedded content files.
func Load() (*Library, error) {
	var blog blogFile
	if err := json.Unmarshal(blogData, &blog); err != nil {
		return nil, fmt.Errorf("failed to parse blog data: %w", err)
	}

	lib := &Library{
		Authors:    blog.Authors,
		Categories: blog.Categories,
		Posts:      blog.Posts,
	}

	if err := json.Unmarshal(eventsData, &lib.Events); err != nil {
		return nil, fmt.Errorf("failed to parse events data: %w", err)
	}
	if err := json.Unmarshal(promotionsData, &lib.Promotions); err != nil {
		return nil, fmt.Errorf("failed to parse promotions data: %w", err)
	}
	if err := json.Unmarshal(testimonialsData, &lib.Testimonials); err != nil {
		return nil, fmt.Errorf("failed to parse testimonials data: %w", err)
	}
	if err := json.Unmarshal(faqData, &lib.FAQ); err != nil {
		return nil, fmt.Errorf("failed to parse faq data: %w", err)
	}

	return lib, nil
}

// PostBySlug finds a blog post by its slug.
func (l *Library) PostBySlug(slug string) (models.BlogPost, bool) {
	for _, p := range l.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.BlogPost{}, false
}

// AuthorByID finds a blog author.
func (l *Library) AuthorByID(id string) (models.BlogAuthor, bool) {
	for _, a := range l.Authors {
		if a.ID == id {
			return a, true
		}
	}
	return models.BlogAuthor{}, false
}

// FeaturedPromotions returns promotions flagged for the home page.
func (l *Library) FeaturedPromotions() []models.Promotion {
	var out []models.Promotion
	for _, p := range l.Promotions {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
