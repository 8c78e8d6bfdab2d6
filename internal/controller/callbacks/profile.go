package callbacks

import (
	"context"
	"strconv"
	"strings"

	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleProfile re-renders the profile with a fresh payment history.
func (h *Handler) handleProfile(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	sess, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}
	chatID := msg.Chat.ID

	payments, err := h.userService.Payments(ctx, sess)
	if err != nil {
		h.logger.Warn("Failed to load payment history", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	h.stateManager.SetData(chatID, state.KeyPayments, payments)

	text, kb := common.BuildProfileScreen(sess, payments)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handlePaymentDetail opens one record of the cached history.
func (h *Handler) handlePaymentDetail(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	arg, err := common.CallbackArg(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid format")
		return
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid format")
		return
	}

	cached, ok := h.stateManager.GetData(msg.Chat.ID, state.KeyPayments)
	payments, cast := cached.([]model.Payment)
	if !ok || !cast || index < 0 || index >= len(payments) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ History expired. Open the profile again.")
		return
	}

	text, kb := common.BuildPaymentDetailScreen(payments[index])
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

func (h *Handler) handleEditProfile(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	sess, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	text, kb := common.BuildEditProfileScreen(sess)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleEditField starts the single-message dialog for one field.
func (h *Handler) handleEditField(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}
	chatID := msg.Chat.ID

	field := strings.TrimPrefix(callback.Data, "edit_field_")
	var (
		dialog state.DialogState
		prompt string
	)
	switch field {
	case "username":
		dialog, prompt = state.StateEditUsername, "✏️ Send the new username:"
	case "email":
		dialog, prompt = state.StateEditEmail, "✏️ Send the new email address:"
	case "phone":
		dialog, prompt = state.StateEditPhone, "✏️ Send the new phone number:"
	default:
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Unknown field")
		return
	}

	h.stateManager.SetState(chatID, dialog)
	h.sendMessage(ctx, b, chatID, prompt)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

func (h *Handler) handleSettings(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	text, kb := common.BuildSettingsScreen()
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}
