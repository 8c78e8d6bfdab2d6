package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/venuebook_bot/internal/api"
	"github.com/Freeeeeet/venuebook_bot/internal/booking"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/Freeeeeet/venuebook_bot/internal/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingBackend is the submission slice of the API client.
type BookingBackend interface {
	CreateBooking(ctx context.Context, req api.CreateBookingRequest, idempotencyKey string) (string, error)
}

type BookingService struct {
	backend BookingBackend
	logger  *zap.Logger
}

func NewBookingService(backend BookingBackend, logger *zap.Logger) *BookingService {
	return &BookingService{
		backend: backend,
		logger:  logger,
	}
}

// Submit validates the form and creates the booking. Validation
// failures return before any network traffic; a backend failure leaves
// the form untouched so the user can retry the same selections. Each
// attempt carries a fresh client-generated idempotency key so the
// backend can deduplicate a resubmission it already accepted.
func (s *BookingService) Submit(ctx context.Context, form *booking.Form, sess *session.Session) (model.Booking, error) {
	if sess == nil {
		return model.Booking{}, ErrNotLoggedIn
	}
	if err := form.Validate(); err != nil {
		return model.Booking{}, err
	}

	key := uuid.NewString()
	bookingID, err := s.backend.CreateBooking(ctx, form.Request(sess.UserID), key)
	if err != nil {
		return model.Booking{}, fmt.Errorf("submit booking: %w", err)
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", bookingID),
		zap.String("venue_id", form.Venue.ID),
		zap.Int64("user_id", sess.UserID),
		zap.Int("total_price", form.TotalPrice),
	)

	return form.Booking(bookingID, sess.UserID), nil
}
