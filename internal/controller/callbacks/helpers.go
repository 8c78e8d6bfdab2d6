package callbacks

import (
	"context"

	"github.com/Freeeeeet/venuebook_bot/internal/booking"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/Freeeeeet/venuebook_bot/internal/session"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// requireSession resolves the callback's chat session; answers the
// callback with an alert when the chat is not logged in.
func (h *Handler) requireSession(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) (*session.Session, *models.Message, bool) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return nil, nil, false
	}

	sess, err := h.userService.Session(ctx, msg.Chat.ID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Something went wrong. Try again later.")
		return nil, nil, false
	}
	if sess == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ You are not logged in. Use /start.")
		return nil, nil, false
	}

	return sess, msg, true
}

// editScreen replaces the message the button belongs to with a new screen.
func (h *Handler) editScreen(ctx context.Context, b *bot.Bot, msg *models.Message, text string, kb *models.InlineKeyboardMarkup) {
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	if err != nil {
		h.logger.Error("Failed to edit screen",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Error(err),
		)
	}
}

func (h *Handler) sendScreen(ctx context.Context, b *bot.Bot, chatID int64, text string, kb *models.InlineKeyboardMarkup) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	if err != nil {
		h.logger.Error("Failed to send screen",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

func (h *Handler) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// bookingForm returns the chat's active booking form, or nil.
func (h *Handler) bookingForm(chatID int64) *booking.Form {
	val, ok := h.stateManager.GetData(chatID, state.KeyBookingForm)
	if !ok {
		return nil
	}
	form, _ := val.(*booking.Form)
	return form
}

// cachedVenues returns the venue list the chat last browsed.
func (h *Handler) cachedVenues(chatID int64) ([]model.Venue, model.Category, bool) {
	venuesVal, ok := h.stateManager.GetData(chatID, state.KeyVenues)
	if !ok {
		return nil, "", false
	}
	catVal, ok := h.stateManager.GetData(chatID, state.KeyCategory)
	if !ok {
		return nil, "", false
	}

	venues, vok := venuesVal.([]model.Venue)
	category, cok := catVal.(model.Category)
	if !vok || !cok {
		return nil, "", false
	}
	return venues, category, true
}
