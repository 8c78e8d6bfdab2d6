package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/venuebook_bot/internal/api"
	"github.com/Freeeeeet/venuebook_bot/internal/booking"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// HandleTextMessage routes free text to the dialog step the chat is in.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	switch h.stateManager.GetState(chatID) {
	// Login
	case state.StateLoginEmail:
		h.handleLoginEmail(ctx, b, chatID, text)
	case state.StateLoginPassword:
		h.handleLoginPassword(ctx, b, chatID, text)

	// Sign up
	case state.StateSignupEmail:
		h.stateManager.SetData(chatID, state.KeySignupEmail, text)
		h.stateManager.SetState(chatID, state.StateSignupUsername)
		h.sendMessage(ctx, b, chatID, "👤 Pick a username:")
	case state.StateSignupUsername:
		h.stateManager.SetData(chatID, state.KeySignupUsername, text)
		h.stateManager.SetState(chatID, state.StateSignupPhone)
		h.sendMessage(ctx, b, chatID, "📱 Your phone number:")
	case state.StateSignupPhone:
		h.stateManager.SetData(chatID, state.KeySignupPhone, text)
		h.stateManager.SetState(chatID, state.StateSignupPassword)
		h.sendMessage(ctx, b, chatID, "🔒 Choose a password (at least 6 characters):")
	case state.StateSignupPassword:
		h.handleSignupPassword(ctx, b, chatID, text)

	// Password reset
	case state.StateForgotEmail:
		h.handleForgotEmail(ctx, b, chatID, text)
	case state.StateForgotOTP:
		h.handleForgotOTP(ctx, b, chatID, text)
	case state.StateForgotNewPassword:
		h.handleForgotNewPassword(ctx, b, chatID, text)

	// Booking form
	case state.StateBookingDate:
		h.handleBookingDate(ctx, b, chatID, text)
	case state.StateBookingName:
		h.handleBookingName(ctx, b, chatID, text)

	// Edit profile
	case state.StateEditUsername:
		h.handleEditProfile(ctx, b, chatID, api.UpdateProfileRequest{Username: text})
	case state.StateEditEmail:
		h.handleEditProfile(ctx, b, chatID, api.UpdateProfileRequest{NewEmail: text})
	case state.StateEditPhone:
		h.handleEditProfile(ctx, b, chatID, api.UpdateProfileRequest{PhoneNumber: text})
	}
}

func (h *Handlers) handleLoginEmail(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	h.stateManager.SetData(chatID, state.KeyLoginEmail, text)
	h.stateManager.SetState(chatID, state.StateLoginPassword)
	h.sendMessage(ctx, b, chatID, "🔒 Your password:")
}

func (h *Handlers) handleLoginPassword(ctx context.Context, b *bot.Bot, chatID int64, password string) {
	emailVal, _ := h.stateManager.GetData(chatID, state.KeyLoginEmail)
	email, _ := emailVal.(string)

	sess, err := h.userService.Login(ctx, chatID, email, password)
	if err != nil {
		h.logger.Warn("Login failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.stateManager.SetState(chatID, state.StateLoginEmail)
		h.sendError(ctx, b, chatID, "❌ "+err.Error()+"\n\nLet's try again. Your email:")
		return
	}

	h.stateManager.Clear(chatID)
	h.sendMessage(ctx, b, chatID, "✅ Login successful. Welcome back, "+sess.Username+"!")

	text, kb := common.BuildCategoriesScreen()
	h.sendScreen(ctx, b, chatID, text, kb)
}

func (h *Handlers) handleSignupPassword(ctx context.Context, b *bot.Bot, chatID int64, password string) {
	emailVal, _ := h.stateManager.GetData(chatID, state.KeySignupEmail)
	usernameVal, _ := h.stateManager.GetData(chatID, state.KeySignupUsername)
	phoneVal, _ := h.stateManager.GetData(chatID, state.KeySignupPhone)

	email, _ := emailVal.(string)
	username, _ := usernameVal.(string)
	phone, _ := phoneVal.(string)

	_, err := h.userService.Signup(ctx, api.SignupRequest{
		Email:       email,
		Username:    username,
		PhoneNumber: phone,
		Password:    password,
	})
	if err != nil {
		h.logger.Warn("Signup failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.stateManager.SetState(chatID, state.StateSignupEmail)
		h.sendError(ctx, b, chatID, "❌ "+err.Error()+"\n\nLet's try again. Your email:")
		return
	}

	h.stateManager.Clear(chatID)
	h.stateManager.SetState(chatID, state.StateLoginEmail)
	h.sendMessage(ctx, b, chatID,
		"✅ Account created! Now log in.\n\n✉️ Your email:")
}

func (h *Handlers) handleForgotEmail(ctx context.Context, b *bot.Bot, chatID int64, email string) {
	if err := h.userService.ForgotPassword(ctx, email); err != nil {
		h.sendError(ctx, b, chatID, "❌ "+err.Error()+"\n\nTry another email or /cancel.")
		return
	}

	h.stateManager.SetData(chatID, state.KeyForgotEmail, email)
	h.stateManager.SetState(chatID, state.StateForgotOTP)
	h.sendMessage(ctx, b, chatID, "✅ OTP sent to your email. Enter the code:")
}

func (h *Handlers) handleForgotOTP(ctx context.Context, b *bot.Bot, chatID int64, otp string) {
	emailVal, _ := h.stateManager.GetData(chatID, state.KeyForgotEmail)
	email, _ := emailVal.(string)

	if err := h.userService.VerifyOTP(ctx, email, otp); err != nil {
		h.sendError(ctx, b, chatID, "❌ "+err.Error()+"\n\nEnter the code again or /cancel.")
		return
	}

	h.stateManager.SetState(chatID, state.StateForgotNewPassword)
	h.sendMessage(ctx, b, chatID, "✅ Code verified. Enter your new password:")
}

func (h *Handlers) handleForgotNewPassword(ctx context.Context, b *bot.Bot, chatID int64, password string) {
	emailVal, _ := h.stateManager.GetData(chatID, state.KeyForgotEmail)
	email, _ := emailVal.(string)

	if err := h.userService.ResetPassword(ctx, email, password); err != nil {
		h.sendError(ctx, b, chatID, "❌ "+err.Error()+"\n\nTry another password or /cancel.")
		return
	}

	h.stateManager.Clear(chatID)
	h.stateManager.SetState(chatID, state.StateLoginEmail)
	h.sendMessage(ctx, b, chatID, "✅ Password reset successfully. Log in now.\n\n✉️ Your email:")
}

func (h *Handlers) handleBookingDate(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	form := h.bookingForm(chatID)
	if form == nil {
		h.stateManager.SetState(chatID, state.StateNone)
		h.sendError(ctx, b, chatID, "❌ No active booking. Use /venues to start one.")
		return
	}

	date, err := time.Parse(dateLayout, text)
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Please send the date as YYYY-MM-DD, e.g. 2026-09-12.")
		return
	}

	form.SetDate(date)
	h.stateManager.SetState(chatID, state.StateNone)

	screenText, kb := common.BuildBookingFormScreen(form)
	h.sendScreen(ctx, b, chatID, screenText, kb)
}

func (h *Handlers) handleBookingName(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	form := h.bookingForm(chatID)
	if form == nil {
		h.stateManager.SetState(chatID, state.StateNone)
		h.sendError(ctx, b, chatID, "❌ No active booking. Use /venues to start one.")
		return
	}

	form.SetAttendeeName(text)
	h.stateManager.SetState(chatID, state.StateNone)

	screenText, kb := common.BuildBookingFormScreen(form)
	h.sendScreen(ctx, b, chatID, screenText, kb)
}

func (h *Handlers) handleEditProfile(ctx context.Context, b *bot.Bot, chatID int64, req api.UpdateProfileRequest) {
	sess, err := h.userService.Session(ctx, chatID)
	if err != nil || sess == nil {
		h.stateManager.SetState(chatID, state.StateNone)
		h.sendError(ctx, b, chatID, "❌ You are not logged in. Use /start.")
		return
	}

	updated, err := h.userService.UpdateProfile(ctx, sess, req)
	if err != nil {
		h.stateManager.SetState(chatID, state.StateNone)
		h.sendError(ctx, b, chatID, "❌ "+err.Error())
		return
	}

	h.stateManager.SetState(chatID, state.StateNone)
	h.sendMessage(ctx, b, chatID, "✅ Profile updated successfully!")

	text, kb := common.BuildEditProfileScreen(updated)
	h.sendScreen(ctx, b, chatID, text, kb)
}

func (h *Handlers) bookingForm(chatID int64) *booking.Form {
	val, ok := h.stateManager.GetData(chatID, state.KeyBookingForm)
	if !ok {
		return nil
	}
	form, _ := val.(*booking.Form)
	return form
}
