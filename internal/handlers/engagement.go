// internal/handlers/engagement.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Mythicool/vaporlax/internal/services"
	"github.com/Mythicool/vaporlax/internal/utils"
)

type EngagementHandler struct {
	engagementService *services.EngagementService
}

func NewEngagementHandler(engagementService *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// POST /newsletter/subscribe
func (h *EngagementHandler) Subscribe(c *gin.Context) {
	var req services.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	sub, err := h.engagementService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrAlreadySubscribed) {
			utils.ConflictResponse(c, "Email is already subscribed")
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, sub)
}

// POST /contact
func (h *EngagementHandler) SubmitContact(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	msg, err := h.engagementService.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"message_id": msg.ID, "received": true})
}

// POST /verify-age
func (h *EngagementHandler) VerifyAge(c *gin.Context) {
	var req services.VerifyAgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	ok, err := h.engagementService.VerifyAge(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"verified": ok})
}

// respondServiceError maps validation failures to a structured 400 and
// everything else to a 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}
