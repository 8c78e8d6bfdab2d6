package callbacks

import (
	"context"

	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleLoginStart begins the login dialog.
func (h *Handler) handleLoginStart(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	h.stateManager.SetState(msg.Chat.ID, state.StateLoginEmail)
	h.sendMessage(ctx, b, msg.Chat.ID, "🔑 Log in\n\n✉️ Your email:")
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleSignupStart begins the registration dialog.
func (h *Handler) handleSignupStart(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	h.stateManager.SetState(msg.Chat.ID, state.StateSignupEmail)
	h.sendMessage(ctx, b, msg.Chat.ID, "🆕 Sign up\n\n✉️ Your email:")
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleForgotStart begins the 3-step password reset dialog.
func (h *Handler) handleForgotStart(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	h.stateManager.SetState(msg.Chat.ID, state.StateForgotEmail)
	h.sendMessage(ctx, b, msg.Chat.ID, "🔐 Password reset\n\n✉️ The email of your account:")
	common.AnswerCallback(ctx, b, callback.ID, "")
}

func (h *Handler) handleLogoutConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	text, kb := common.BuildLogoutConfirmScreen()
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleLogout drops the session and returns to the welcome screen.
func (h *Handler) handleLogout(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}
	chatID := msg.Chat.ID

	if err := h.userService.Logout(ctx, chatID); err != nil {
		h.logger.Error("Logout failed", zap.Int64("chat_id", chatID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Could not log out. Try again.")
		return
	}

	h.stateManager.Clear(chatID)
	h.payments.Remove(chatID)

	text, kb := common.BuildWelcomeScreen(false)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "Logged out")
}
