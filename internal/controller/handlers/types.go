package handlers

import (
	"github.com/Freeeeeet/venuebook_bot/internal/controller/state"
	"github.com/Freeeeeet/venuebook_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers processes commands and dialog text messages.
type Handlers struct {
	userService    *service.UserService
	venueService   *service.VenueService
	bookingService *service.BookingService
	stateManager   *state.Manager
	logger         *zap.Logger
}

func NewHandlers(
	userService *service.UserService,
	venueService *service.VenueService,
	bookingService *service.BookingService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:    userService,
		venueService:   venueService,
		bookingService: bookingService,
		stateManager:   stateManager,
		logger:         logger,
	}
}
