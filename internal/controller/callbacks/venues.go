package callbacks

import (
	"context"
	"strconv"

	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleCategories shows the category picker.
func (h *Handler) handleCategories(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	text, kb := common.BuildCategoriesScreen()
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleCategory fetches the category's venues. Entering the screen
// always re-fetches; a failed fetch renders as an empty catalog.
func (h *Handler) handleCategory(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	arg, err := common.CallbackArg(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid format")
		return
	}
	category, ok := model.ParseCategory(arg)
	if !ok {
		h.logger.Warn("Unknown category in callback", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Unknown category")
		return
	}

	venues := h.venueService.ByCategory(ctx, category)

	h.stateManager.SetData(msg.Chat.ID, state.KeyVenues, venues)
	h.stateManager.SetData(msg.Chat.ID, state.KeyCategory, category)

	text, kb := common.BuildVenueListScreen(category, venues)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleVenueDetail shows one venue from the cached list.
func (h *Handler) handleVenueDetail(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
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

	venues, category, ok := h.cachedVenues(msg.Chat.ID)
	if !ok || index < 0 || index >= len(venues) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Venue list expired. Pick the category again.")
		return
	}

	h.stateManager.SetData(msg.Chat.ID, state.KeyVenueIndex, index)

	text, kb := common.BuildVenueDetailScreen(venues[index], category)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}
