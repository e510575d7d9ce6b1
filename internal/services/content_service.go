// internal/services/content_service.go
package services

import (
	"context"
	"errors"

	"github.com/Mythicool/vaporlax/internal/content"
	"github.com/Mythicool/vaporlax/internal/models"
)

var ErrPostNotFound = errors.New("blog post not found")

// ContentService serves the embedded marketing content. Reads go
// through the same simulated latency as the catalog so loading states
// behave consistently.
type ContentService struct {
	library *content.Library
	catalog *CatalogService
}

func NewContentService(lib *content.Library, catalogService *CatalogService) *ContentService {
	return &ContentService{library: lib, catalog: catalogService}
}

func (s *ContentService) GetPosts(ctx context.Context) ([]models.BlogPost, error) {
	if err := s.catalog.simulateDelay(ctx); err != nil {
		return nil, err
	}
	return s.library.Posts, nil
}

func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	if err := s.catalog.simulateDelay(ctx); err != nil {
		return models.BlogPost{}, err
	}
	post, ok := s.library.PostBySlug(slug)
	if !ok {
		return models.BlogPost{}, ErrPostNotFound
	}
	return post, nil
}

// AuthorOf resolves a post's author.
func (s *ContentService) AuthorOf(post models.BlogPost) (models.BlogAuthor, bool) {
	return s.library.AuthorByID(post.AuthorID)
}

func (s *ContentService) GetAuthors() []models.BlogAuthor {
	return s.library.Authors
}

func (s *ContentService) GetCategories() []models.BlogCategory {
	return s.library.Categories
}

func (s *ContentService) GetEvents() []models.Event {
	return s.library.Events
}

func (s *ContentService) GetPromotions() []models.Promotion {
	return s.library.Promotions
}

func (s *ContentService) GetTestimonials() []models.Testimonial {
	return s.library.Testimonials
}

func (s *ContentService) GetFAQ() []models.FAQEntry {
	return s.library.FAQ
}
