package handlers

import (
	"context"

	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart shows the welcome screen with login/signup entry points,
// or the categories if the chat already has a session.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.stateManager.Clear(chatID)

	sess, err := h.userService.Session(ctx, chatID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	text, kb := common.BuildWelcomeScreen(sess != nil)
	h.sendScreen(ctx, b, chatID, text, kb)
}

func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "🏛 VenueBook commands:\n\n" +
		"/start - Welcome screen, log in or sign up\n" +
		"/venues - Browse venues by category\n" +
		"/profile - Your account and payments\n" +
		"/settings - Settings and logout\n" +
		"/cancel - Abort the current dialog\n" +
		"/help - This help"

	h.sendMessage(ctx, b, update.Message.Chat.ID, text)
}

// HandleVenues is the home screen: category selection.
func (h *Handlers) HandleVenues(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireSession(ctx, b, update); !ok {
		return
	}

	text, kb := common.BuildCategoriesScreen()
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleProfile shows the account with its payment history.
func (h *Handlers) HandleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}
	chatID := update.Message.Chat.ID

	payments, err := h.userService.Payments(ctx, sess)
	if err != nil {
		h.logger.Error("Failed to fetch payments", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Could not load your payments. Please try again.")
		return
	}

	h.stateManager.SetData(chatID, state.KeyPayments, payments)

	text, kb := common.BuildProfileScreen(sess, payments)
	h.sendScreen(ctx, b, chatID, text, kb)
}

func (h *Handlers) HandleSettings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireSession(ctx, b, update); !ok {
		return
	}

	text, kb := common.BuildSettingsScreen()
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleCancel aborts whatever dialog the chat is in.
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.stateManager.Clear(chatID)
	h.sendMessage(ctx, b, chatID, "Dialog canceled. Use /venues to keep browsing.")
}
