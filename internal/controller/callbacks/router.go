package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCallbackQuery is the entry point for all inline-button presses.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery
	data := callback.Data

	h.logger.Info("Callback received",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
	)

	switch {
	// ===== Auth =====
	case data == Login:
		h.handleLoginStart(ctx, b, callback)
	case data == Signup:
		h.handleSignupStart(ctx, b, callback)
	case data == Forgot:
		h.handleForgotStart(ctx, b, callback)
	case data == Logout:
		h.handleLogoutConfirm(ctx, b, callback)
	case data == LogoutYes:
		h.handleLogout(ctx, b, callback)

	// ===== Catalog =====
	case data == BackCategories:
		h.handleCategories(ctx, b, callback)
	case strings.HasPrefix(data, "cat:"):
		h.handleCategory(ctx, b, callback)
	case strings.HasPrefix(data, "venue:"):
		h.handleVenueDetail(ctx, b, callback)

	// ===== Booking form =====
	case data == Book:
		h.handleBookStart(ctx, b, callback)
	case data == BookBack:
		h.handleBookBack(ctx, b, callback)
	case strings.HasPrefix(data, "pkg:"):
		h.handlePackage(ctx, b, callback)
	case strings.HasPrefix(data, "fmt:"):
		h.handleTimeFormat(ctx, b, callback)
	case data == FormDate:
		h.handleFormDate(ctx, b, callback)
	case data == FormName:
		h.handleFormName(ctx, b, callback)
	case data == FormConfirm:
		h.handleFormConfirm(ctx, b, callback)

	// ===== Payment =====
	case data == Pay:
		h.handlePay(ctx, b, callback)
	case data == PayCancel:
		h.handlePayCancel(ctx, b, callback)
	case data == PayCancelYes:
		h.handlePayCancelYes(ctx, b, callback)
	case data == PayCancelNo:
		h.handlePayCancelNo(ctx, b, callback)

	// ===== Profile =====
	case data == Profile:
		h.handleProfile(ctx, b, callback)
	case strings.HasPrefix(data, "payment:"):
		h.handlePaymentDetail(ctx, b, callback)
	case data == EditProfile:
		h.handleEditProfile(ctx, b, callback)
	case data == EditUsername, data == EditEmail, data == EditPhone:
		h.handleEditField(ctx, b, callback)
	case data == Settings:
		h.handleSettings(ctx, b, callback)

	default:
		h.logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
