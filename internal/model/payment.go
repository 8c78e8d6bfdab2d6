package model

// Payment is one entry of the user's payment history as the backend
// returns it from GET /api/payments/user.
type Payment struct {
	BookingID     string        `json:"bookingID"`
	VenueName     string        `json:"venueName"`
	Date          string        `json:"date"`
	EventType     string        `json:"eventType"`
	DayFormat     string        `json:"dayFormat"`
	Package       string        `json:"selectedPackage"`
	Price         int           `json:"price"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
