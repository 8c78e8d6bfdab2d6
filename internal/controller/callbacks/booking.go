package callbacks

import (
	"context"
	"errors"

	"github.com/Freeeeeet/venuebook_bot/internal/booking"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/Freeeeeet/venuebook_bot/internal/payment"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleBookStart opens the booking form for the selected venue with
// the screen's defaults filled in.
func (h *Handler) handleBookStart(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	sess, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}
	chatID := msg.Chat.ID

	venues, category, ok := h.cachedVenues(chatID)
	indexVal, iok := h.stateManager.GetData(chatID, state.KeyVenueIndex)
	index, cast := indexVal.(int)
	if !ok || !iok || !cast || index < 0 || index >= len(venues) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Venue selection expired. Pick the category again.")
		return
	}

	form := booking.NewForm(venues[index], category, sess.Username)
	h.stateManager.SetData(chatID, state.KeyBookingForm, form)

	text, kb := common.BuildBookingFormScreen(form)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleBookBack abandons the form and returns to the venue detail.
func (h *Handler) handleBookBack(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}
	chatID := msg.Chat.ID

	h.stateManager.DeleteData(chatID, state.KeyBookingForm)
	h.stateManager.SetState(chatID, state.StateNone)

	venues, category, ok := h.cachedVenues(chatID)
	indexVal, iok := h.stateManager.GetData(chatID, state.KeyVenueIndex)
	index, cast := indexVal.(int)
	if !ok || !iok || !cast || index < 0 || index >= len(venues) {
		text, kb := common.BuildCategoriesScreen()
		h.editScreen(ctx, b, msg, text, kb)
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	text, kb := common.BuildVenueDetailScreen(venues[index], category)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handlePackage switches the package tier; the total updates with it.
func (h *Handler) handlePackage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	form := h.bookingForm(msg.Chat.ID)
	if form == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ No active booking. Use /venues.")
		return
	}

	arg, err := common.CallbackArg(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid format")
		return
	}
	pkg, ok := model.ParsePackage(arg)
	if !ok {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Unknown package")
		return
	}

	if pkg == form.Package {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	form.SetPackage(pkg)

	text, kb := common.BuildBookingFormScreen(form)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

func (h *Handler) handleTimeFormat(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	form := h.bookingForm(msg.Chat.ID)
	if form == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ No active booking. Use /venues.")
		return
	}

	arg, err := common.CallbackArg(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Invalid format")
		return
	}
	tf, ok := model.ParseTimeFormat(arg)
	if !ok {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Unknown time format")
		return
	}

	if tf == form.TimeFormat {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	form.SetTimeFormat(tf)

	text, kb := common.BuildBookingFormScreen(form)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

func (h *Handler) handleFormDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	if h.bookingForm(msg.Chat.ID) == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ No active booking. Use /venues.")
		return
	}

	h.stateManager.SetState(msg.Chat.ID, state.StateBookingDate)
	h.sendMessage(ctx, b, msg.Chat.ID, "📅 Send the event date as YYYY-MM-DD:")
	common.AnswerCallback(ctx, b, callback.ID, "")
}

func (h *Handler) handleFormName(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	if h.bookingForm(msg.Chat.ID) == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ No active booking. Use /venues.")
		return
	}

	h.stateManager.SetState(msg.Chat.ID, state.StateBookingName)
	h.sendMessage(ctx, b, msg.Chat.ID, "✏️ Send the attendee name for the booking:")
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handleFormConfirm submits the booking and moves to the payment
// screen. A validation failure never reaches the network; a backend
// failure keeps the form intact for a retry.
func (h *Handler) handleFormConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	sess, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}
	chatID := msg.Chat.ID

	form := h.bookingForm(chatID)
	if form == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ No active booking. Use /venues.")
		return
	}

	booked, err := h.bookingService.Submit(ctx, form, sess)
	if err != nil {
		if errors.Is(err, booking.ErrNameRequired) {
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Please fill in the attendee name first.")
			return
		}
		h.logger.Error("Booking submission failed", zap.Int64("chat_id", chatID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Booking failed: "+err.Error())
		return
	}

	// The form is consumed; the unpaid booking now drives the flow.
	h.stateManager.DeleteData(chatID, state.KeyBookingForm)

	orch := payment.NewOrchestrator(booked, h.paymentBackend, h.logger)
	h.payments.Put(chatID, orch, h.resultNotifier(b, chatID))

	text, kb := common.BuildPaymentScreen(booked, "")
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "✅ Booking confirmed")
}
