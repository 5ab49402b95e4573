package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phonebot/internal/dedup"
	apperrors "phonebot/internal/errors"
	"phonebot/internal/logger"
	"phonebot/internal/services"
)

// BotHandler receives Telegram webhook pushes.
type BotHandler struct {
	botService services.BotServicer
	guard      dedup.UpdateGuard
}

// NewBotHandler creates a new BotHandler. A nil guard processes every update.
func NewBotHandler(botService services.BotServicer, guard dedup.UpdateGuard) *BotHandler {
	if guard == nil {
		guard = dedup.NopGuard{}
	}
	return &BotHandler{botService: botService, guard: guard}
}

// Webhook processes one Telegram update.
// @Summary     Telegram webhook
// @Description Receives a Telegram update, answers the sender and acknowledges with {"ok": true}.
// @Description Updates without a message and repeated deliveries are acknowledged without processing.
// @Tags        telegram
// @Accept      json
// @Produce     json
// @Param       update body     object true "Telegram Update object"
// @Success     200    {object} object "{\"ok\": true}"
// @Failure     405    {object} ErrorResponse "Method not allowed"
// @Failure     500    {object} ErrorResponse "Bot token not configured or processing failed"
// @Router      /telegram/webhook [post]
func (h *BotHandler) Webhook(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		respondWithError(c, apperrors.ErrMethodNotAllowed)
		return
	}

	if err := h.botService.Ready(); err != nil {
		respondWithError(c, err)
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	// Telegram update IDs start at 1; bodies without one are never claimed.
	if update.UpdateID > 0 {
		claimed, err := h.guard.Claim(c.Request.Context(), update.UpdateID)
		if err != nil {
			logger.Get().Warnw("Update de-duplication unavailable", "update_id", update.UpdateID, "error", err)
			claimed = true
		}
		if !claimed {
			logger.Get().Infow("Skipping redelivered update", "update_id", update.UpdateID)
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}
	}

	if err := h.botService.HandleUpdate(&update); err != nil {
		if update.UpdateID > 0 {
			if relErr := h.guard.Release(c.Request.Context(), update.UpdateID); relErr != nil {
				logger.Get().Warnw("Failed to release update claim", "update_id", update.UpdateID, "error", relErr)
			}
		}
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
