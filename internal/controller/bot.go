package controller

import (
	"context"

	"github.com/Freeeeeet/venuebook_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/handlers"
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/Freeeeeet/venuebook_bot/internal/payment"
	"github.com/Freeeeeet/venuebook_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	venueService *service.VenueService,
	bookingService *service.BookingService,
	payments *payment.Registry,
	paymentBackend payment.Backend,
	logger *zap.Logger,
) *BotController {
	// One state manager shared by command and callback handlers: a
	// dialog started from a button is finished by a plain message.
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		userService,
		venueService,
		bookingService,
		stateManager,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		userService,
		venueService,
		bookingService,
		stateManager,
		payments,
		paymentBackend,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers wires commands, dialog messages and inline buttons.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/venues", bot.MatchTypeExact, c.handlers.HandleVenues)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypeExact, c.handlers.HandleProfile)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/settings", bot.MatchTypeExact, c.handlers.HandleSettings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Dialog steps arrive as plain text
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Inline buttons
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands installs the bot's command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start the bot"},
		{Command: "venues", Description: "🏛 Browse event venues"},
		{Command: "profile", Description: "👤 Profile and payment history"},
		{Command: "settings", Description: "⚙️ Settings"},
		{Command: "help", Description: "❓ Command reference"},
		{Command: "cancel", Description: "✖️ Cancel the current dialog"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start blocks on long polling until the context is canceled.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
