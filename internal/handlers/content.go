// internal/handlers/content.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Mythicool/vaporlax/internal/services"
	"github.com/Mythicool/vaporlax/internal/utils"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GET /blog
func (h *ContentHandler) GetPosts(c *gin.Context) {
	posts, err := h.contentService.GetPosts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponseWithMeta(c, posts, gin.H{
		"authors":    h.contentService.GetAuthors(),
		"categories": h.contentService.GetCategories(),
	})
}

// GET /blog/:slug
func (h *ContentHandler) GetPost(c *gin.Context) {
	post, err := h.contentService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			utils.NotFoundResponse(c, "Post")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	meta := gin.H{}
	if author, ok := h.contentService.AuthorOf(post); ok {
		meta["author"] = author
	}
	utils.SuccessResponseWithMeta(c, post, meta)
}

// GET /events
func (h *ContentHandler) GetEvents(c *gin.Context) {
	utils.SuccessResponse(c, h.contentService.GetEvents())
}

// GET /promotions
func (h *ContentHandler) GetPromotions(c *gin.Context) {
	utils.SuccessResponse(c, h.contentService.GetPromotions())
}

// GET /testimonials
func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	utils.SuccessResponse(c, h.contentService.GetTestimonials())
}

// GET /faq
func (h *ContentHandler) GetFAQ(c *gin.Context) {
	utils.SuccessResponse(c, h.contentService.GetFAQ())
}
