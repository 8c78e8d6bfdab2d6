package callbacks

import (
	"bytes"
	"context"
	"time"

	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/venuebook_bot/internal/payment"
	"github.com/Freeeeeet/venuebook_bot/internal/receipt"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handlePay creates the provider order and re-renders the payment
// screen with the approval link. Tapping "Pay" again while an order is
// in flight is rejected by the flow itself.
func (h *Handler) handlePay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}
	chatID := msg.Chat.ID

	orch := h.payments.ByChat(chatID)
	if orch == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ No pending payment. Use /venues to book.")
		return
	}

	approvalURL, err := orch.Pay(ctx)
	if err != nil {
		h.logger.Error("Payment order failed", zap.Int64("chat_id", chatID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Could not start payment: "+err.Error())
		return
	}
	h.payments.BindOrder(chatID, orch.OrderID())

	text, kb := common.BuildPaymentScreen(orch.Booking(), approvalURL)
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handlePayCancel shows the cancellation confirmation.
func (h *Handler) handlePayCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	orch := h.payments.ByChat(msg.Chat.ID)
	if orch == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Nothing to cancel.")
		return
	}

	text, kb := common.BuildCancelConfirmScreen()
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// handlePayCancelYes deletes the unpaid booking and leaves the flow.
func (h *Handler) handlePayCancelYes(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}
	chatID := msg.Chat.ID

	orch := h.payments.ByChat(chatID)
	if orch == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Nothing to cancel.")
		return
	}

	if err := orch.Cancel(ctx); err != nil {
		h.logger.Error("Booking cancellation failed", zap.Int64("chat_id", chatID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Cancellation failed: "+err.Error())
		return
	}
	h.payments.Remove(chatID)

	text, kb := common.BuildCategoriesScreen()
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "🗑 Booking canceled")
}

// handlePayCancelNo returns to the payment screen unchanged.
func (h *Handler) handlePayCancelNo(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	_, msg, ok := h.requireSession(ctx, b, callback)
	if !ok {
		return
	}

	orch := h.payments.ByChat(msg.Chat.ID)
	if orch == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Nothing to resume.")
		return
	}

	text, kb := common.BuildPaymentScreen(orch.Booking(), orch.ApprovalURL())
	h.editScreen(ctx, b, msg, text, kb)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// resultNotifier builds the callback the return listener fires when a
// navigation event finishes the flow. It runs on the listener's
// goroutine, detached from any Telegram update, so it carries its own
// context.
func (h *Handler) resultNotifier(b *bot.Bot, chatID int64) payment.ResultFunc {
	return func(outcome payment.Outcome, err error) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		switch outcome {
		case payment.OutcomeCompleted:
			h.notifyPaymentCompleted(ctx, b, chatID)
		case payment.OutcomeFailed:
			h.logger.Error("Payment failed", zap.Int64("chat_id", chatID), zap.Error(err))
			h.sendMessage(ctx, b, chatID,
				"❌ <b>Payment failed.</b>\n\nYour booking is still reserved. Tap «Pay» to try again, or cancel the booking.")
		}
	}
}

func (h *Handler) notifyPaymentCompleted(ctx context.Context, b *bot.Bot, chatID int64) {
	orch := h.payments.ByChat(chatID)
	if orch == nil {
		return
	}
	booked := orch.Booking()
	h.payments.Remove(chatID)

	h.sendMessage(ctx, b, chatID,
		"🎉 <b>Payment successful!</b>\n\nYour venue is booked. The receipt is on its way.")

	png, err := receipt.Render(booked)
	if err != nil {
		h.logger.Error("Receipt rendering failed",
			zap.Int64("chat_id", chatID),
			zap.String("booking_id", booked.ID),
			zap.Error(err),
		)
	} else {
		_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID: chatID,
			Photo: &models.InputFileUpload{
				Filename: "receipt.png",
				Data:     bytes.NewReader(png),
			},
		})
		if err != nil {
			h.logger.Error("Failed to send receipt", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}

	text, kb := common.BuildCategoriesScreen()
	h.sendScreen(ctx, b, chatID, text, kb)
}
