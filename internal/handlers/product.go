// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mythicool/vaporlax/internal/models"
	"github.com/Mythicool/vaporlax/internal/services"
	"github.com/Mythicool/vaporlax/internal/store"
	"github.com/Mythicool/vaporlax/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	sessions       *store.Manager
}

func NewProductHandler(catalogService *services.CatalogService, sessions *store.Manager) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		sessions:       sessions,
	}
}

// GET /products
//
// Filter query params merge into the session's filter set, so a
// category picked on one request still constrains the next. DELETE
// /products/filters clears them.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	session := h.currentSession(c)
	params := utils.GetPaginationParams(c)

	if filters, ok := parseFilters(c); ok {
		session.Products.SetFilters(filters)
	}

	products := session.Products.FilteredProducts()
	page, total := utils.Paginate(products, params)

	result := utils.CreatePaginationResult(page, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, product)
}

// GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.catalogService.GetFeaturedProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, products)
}

// GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.Categories())
}

// PUT /products/filters
func (h *ProductHandler) SetFilters(c *gin.Context) {
	session := h.currentSession(c)

	var filters models.ProductFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		utils.BadRequestResponse(c, "Invalid filter payload", err.Error())
		return
	}

	session.Products.SetFilters(filters)
	utils.SuccessResponseWithMeta(c, session.Products.FilteredProducts(), gin.H{
		"filters": session.Products.Filters(),
	})
}

// DELETE /products/filters
func (h *ProductHandler) ClearFilters(c *gin.Context) {
	session := h.currentSession(c)
	session.Products.ClearFilters()
	utils.SuccessResponse(c, session.Products.FilteredProducts())
}

func (h *ProductHandler) currentSession(c *gin.Context) *store.Session {
	sessionID, _ := utils.GetSessionIDFromContext(c)
	return h.sessions.Session(sessionID)
}

// parseFilters builds a partial filter set from query params. Only
// params that are present become predicates.
func parseFilters(c *gin.Context) (models.ProductFilters, bool) {
	var filters models.ProductFilters
	present := false

	if category := c.Query("category"); category != "" {
		filters.Category = &category
		present = true
	}

	minStr, maxStr := c.Query("min_price"), c.Query("max_price")
	if minStr != "" || maxStr != "" {
		pr := models.PriceRange{Min: 0, Max: 1e9}
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			pr.Min = v
		}
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			pr.Max = v
		}
		filters.PriceRange = &pr
		present = true
	}

	if inStockStr := c.Query("in_stock"); inStockStr != "" {
		if inStock, err := strconv.ParseBool(inStockStr); err == nil {
			filters.InStock = &inStock
			present = true
		}
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			filters.Featured = &featured
			present = true
		}
	}

	if search := c.Query("search"); search != "" {
		filters.Search = &search
		present = true
	}

	return filters, present
}
