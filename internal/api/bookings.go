package api

import (
	"context"
	"fmt"
	"net/http"
)

// CreateBookingRequest is the submission payload. Field names follow
// the backend contract verbatim.
type CreateBookingRequest struct {
	VenueID       string `json:"venueID"`
	EventType     string `json:"eventType"`
	UserID        int64  `json:"userID"`
	UserName      string `json:"userName"`
	BookingDate   string `json:"bookingDate"` // RFC 3339
	DayFormat     string `json:"dayFormat"`
	VenueName     string `json:"venueName"`
	VenuePrice    int    `json:"venuePrice"`
	Package       string `json:"package"`
	TotalPrice    int    `json:"totalPrice"`
	PaymentStatus string `json:"paymentStatus"`
}

type createBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingID"`
	Message   string `json:"message"`
}

// CreateBooking submits a booking and returns the server-assigned ID.
// The idempotency key is sent as a header so a retried submission of
// the same form does not create a duplicate booking server-side.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest, idempotencyKey string) (string, error) {
	headers := map[string]string{"Idempotency-Key": idempotencyKey}

	var out createBookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", headers, req, &out); err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("create booking: %s", fallback(out.Message, "backend reported failure"))
	}
	if out.BookingID == "" {
		return "", fmt.Errorf("create booking: backend returned no booking ID")
	}
	return out.BookingID, nil
}

// DeleteBooking cancels an unpaid booking server-side.
func (c *Client) DeleteBooking(ctx context.Context, bookingID string) error {
	var out statusResponse
	if err := c.do(ctx, http.MethodDelete, "/api/bookings/"+bookingID, nil, nil, &out); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("delete booking: %s", fallback(out.Message, "backend reported failure"))
	}
	return nil
}
