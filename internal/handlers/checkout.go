// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Mythicool/vaporlax/internal/services"
	"github.com/Mythicool/vaporlax/internal/store"
	"github.com/Mythicool/vaporlax/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	sessions        *store.Manager
}

func NewCheckoutHandler(checkoutService *services.CheckoutService, sessions *store.Manager) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		sessions:        sessions,
	}
}

// POST /checkout/session
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)
	cart := h.sessions.Session(sessionID).Cart.Cart()

	checkout, err := h.checkoutService.CreateSession(c.Request.Context(), cart.Items)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, "Cart is empty", nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, checkout)
}

// GET /checkout/verify?session_id=...
func (h *CheckoutHandler) VerifySession(c *gin.Context) {
	checkoutSessionID := c.Query("session_id")
	if checkoutSessionID == "" {
		utils.BadRequestResponse(c, "session_id is required", nil)
		return
	}

	status, err := h.checkoutService.VerifySession(c.Request.Context(), checkoutSessionID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"session_id":     checkoutSessionID,
		"payment_status": status,
	})
}
