// internal/handlers/ui.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Mythicool/vaporlax/internal/store"
	"github.com/Mythicool/vaporlax/internal/utils"
)

type UIHandler struct {
	sessions *store.Manager
}

func NewUIHandler(sessions *store.Manager) *UIHandler {
	return &UIHandler{sessions: sessions}
}

type uiUpdateRequest struct {
	CartDrawerOpen *bool `json:"cart_drawer_open,omitempty"`
	MobileMenuOpen *bool `json:"mobile_menu_open,omitempty"`
	Loading        *bool `json:"loading,omitempty"`
}

// GET /ui
func (h *UIHandler) GetState(c *gin.Context) {
	sessionID, _ := utils.GetSessionIDFromContext(c)
	utils.SuccessResponse(c, h.sessions.Session(sessionID).UI.State())
}

// PATCH /ui
func (h *UIHandler) UpdateState(c *gin.Context) {
	var req uiUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	sessionID, _ := utils.GetSessionIDFromContext(c)
	ui := h.sessions.Session(sessionID).UI

	if req.CartDrawerOpen != nil {
		ui.SetCartDrawerOpen(*req.CartDrawerOpen)
	}
	if req.MobileMenuOpen != nil {
		ui.SetMobileMenuOpen(*req.MobileMenuOpen)
	}
	if req.Loading != nil {
		ui.SetLoading(*req.Loading)
	}

	utils.SuccessResponse(c, ui.State())
}
