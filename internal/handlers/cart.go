// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Mythicool/vaporlax/internal/config"
	"github.com/Mythicool/vaporlax/internal/pricing"
	"github.com/Mythicool/vaporlax/internal/services"
	"github.com/Mythicool/vaporlax/internal/store"
	"github.com/Mythicool/vaporlax/internal/utils"
)

type CartHandler struct {
	catalogService *services.CatalogService
	sessions       *store.Manager
	config         *config.Config
}

func NewCartHandler(catalogService *services.CatalogService, sessions *store.Manager, cfg *config.Config) *CartHandler {
	return &CartHandler{
		catalogService: catalogService,
		sessions:       sessions,
		config:         cfg,
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// cartView is the cart plus the checkout math the cart page shows.
type cartView struct {
	Items     interface{} `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"item_count"`
	Summary   cartSummary `json:"summary"`
}

type cartSummary struct {
	Subtotal          float64 `json:"subtotal"`
	Tax               float64 `json:"tax"`
	Shipping          float64 `json:"shipping"`
	Total             float64 `json:"total"`
	SubtotalFormatted string  `json:"subtotal_formatted"`
	TotalFormatted    string  `json:"total_formatted"`
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart := h.currentSession(c).Cart.Cart()
	utils.SuccessResponse(c, h.view(cart.Items, cart.Total, cart.ItemCount))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	cartStore := h.currentSession(c).Cart
	cartStore.Add(product, req.Quantity)

	cart := cartStore.Cart()
	utils.CreatedResponse(c, h.view(cart.Items, cart.Total, cart.ItemCount))
}

// PATCH /cart/items/:productID
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	cartStore := h.currentSession(c).Cart
	cartStore.UpdateQuantity(c.Param("productID"), req.Quantity)

	cart := cartStore.Cart()
	utils.SuccessResponse(c, h.view(cart.Items, cart.Total, cart.ItemCount))
}

// DELETE /cart/items/:productID
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartStore := h.currentSession(c).Cart
	cartStore.Remove(c.Param("productID"))

	cart := cartStore.Cart()
	utils.SuccessResponse(c, h.view(cart.Items, cart.Total, cart.ItemCount))
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartStore := h.currentSession(c).Cart
	cartStore.Clear()

	cart := cartStore.Cart()
	utils.SuccessResponse(c, h.view(cart.Items, cart.Total, cart.ItemCount))
}

func (h *CartHandler) currentSession(c *gin.Context) *store.Session {
	sessionID, _ := utils.GetSessionIDFromContext(c)
	return h.sessions.Session(sessionID)
}

func (h *CartHandler) view(items interface{}, subtotal float64, itemCount int) cartView {
	p := h.config.Pricing
	tax := pricing.CalculateTaxAt(subtotal, p.TaxRate)
	shipping := pricing.CalculateShippingWith(subtotal, p.FlatShippingFee, p.FreeShippingThreshold)
	total := subtotal + tax + shipping

	return cartView{
		Items:     items,
		Total:     subtotal,
		ItemCount: itemCount,
		Summary: cartSummary{
			Subtotal:          subtotal,
			Tax:               tax,
			Shipping:          shipping,
			Total:             total,
			SubtotalFormatted: pricing.FormatPrice(subtotal),
			TotalFormatted:    pricing.FormatPrice(total),
		},
	}
}
