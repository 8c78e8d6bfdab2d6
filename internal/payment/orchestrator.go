package payment

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/Freeeeeet/venuebook_bot/internal/api"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"go.uber.org/zap"
)

// State of the payment flow for one booking.
type State string

const (
	StateIdle             State = "idle"              // summary shown, waiting for "Pay"
	StateRequestingOrder  State = "requesting_order"  // creating the provider order
	StateAwaitingApproval State = "awaiting_approval" // payer is on the provider's page
	StateFinalizing       State = "finalizing"        // capturing and persisting
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// Outcome of one navigation event fed into the machine.
type Outcome int

const (
	// OutcomeIgnored means the event carried no completion parameters,
	// arrived in the wrong state, or hit the processed guard.
	OutcomeIgnored Outcome = iota
	OutcomeCompleted
	OutcomeFailed
)

// Backend is the slice of the API client the orchestrator drives.
type Backend interface {
	CreateOrder(ctx context.Context, price int) (string, error)
	ExecutePayment(ctx context.Context, orderID, payerID string) error
	PersistPaymentSuccess(ctx context.Context, req api.PaymentSuccessRequest) error
	DeleteBooking(ctx context.Context, bookingID string) error
}

// Orchestrator runs the payment flow of a single unpaid booking:
// Idle -> RequestingOrder -> AwaitingApproval -> Finalizing -> Done/Failed.
// Navigation events from the return listener and user actions from the
// bot arrive on different goroutines, so every transition goes through
// the mutex. The processed flag is set before the finalization calls
// begin, which makes duplicate return redirects harmless.
type Orchestrator struct {
	mu        sync.Mutex
	state     State
	processed bool
	canceled  bool
	lastErr   error

	booking     model.Booking
	orderID     string
	approvalURL string

	backend Backend
	logger  *zap.Logger
}

func NewOrchestrator(booking model.Booking, backend Backend, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		state:   StateIdle,
		booking: booking,
		backend: backend,
		logger:  logger,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Booking() model.Booking {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.booking
}

// ApprovalURL is the provider page the payer approves on, empty until
// Pay succeeded.
func (o *Orchestrator) ApprovalURL() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.approvalURL
}

// OrderID is known once Pay returned an approval URL carrying a token.
func (o *Orchestrator) OrderID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.orderID
}

// Pay creates a provider order and moves to AwaitingApproval. Starting
// a payment opens a fresh payment session, so the processed guard is
// reset here and nowhere else.
func (o *Orchestrator) Pay(ctx context.Context) (string, error) {
	o.mu.Lock()
	if o.state != StateIdle && o.state != StateFailed {
		state := o.state
		o.mu.Unlock()
		return "", fmt.Errorf("payment already in progress (state %s)", state)
	}
	o.state = StateRequestingOrder
	price := o.booking.TotalPrice
	o.mu.Unlock()

	approvalURL, err := o.backend.CreateOrder(ctx, price)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.state = StateIdle
		o.lastErr = err
		return "", fmt.Errorf("request order: %w", err)
	}

	o.approvalURL = approvalURL
	o.orderID = orderIDFromApprovalURL(approvalURL)
	o.processed = false
	o.state = StateAwaitingApproval

	o.logger.Info("Payment order created",
		zap.String("booking_id", o.booking.ID),
		zap.String("order_id", o.orderID),
	)

	return approvalURL, nil
}

// HandleNavigation consumes one navigation event of the payer's
// browser, i.e. one hit on the return endpoint. Events without both
// the provider token and the payer ID are ignored, as is anything
// after the processed guard has fired.
func (o *Orchestrator) HandleNavigation(ctx context.Context, rawURL string) (Outcome, error) {
	token, payerID, ok := completionParams(rawURL)
	if !ok {
		return OutcomeIgnored, nil
	}

	o.mu.Lock()
	if o.state != StateAwaitingApproval || o.processed {
		o.mu.Unlock()
		return OutcomeIgnored, nil
	}
	// The guard goes up before the finalization calls, not after:
	// the provider may fire the same redirect more than once.
	o.processed = true
	o.state = StateFinalizing
	booking := o.booking
	o.mu.Unlock()

	if err := o.backend.ExecutePayment(ctx, token, payerID); err != nil {
		o.mu.Lock()
		o.state = StateFailed
		o.lastErr = err
		o.mu.Unlock()
		return OutcomeFailed, fmt.Errorf("execute payment: %w", err)
	}

	// Persist only after a successful capture. If persisting fails the
	// payment itself still went through, so the flow completes and the
	// failure is logged for reconciliation.
	err := o.backend.PersistPaymentSuccess(ctx, api.PaymentSuccessRequest{
		VenueName:       booking.VenueName,
		Date:            booking.Date.Format("2006-01-02T15:04:05Z07:00"),
		EventType:       string(booking.EventType),
		SelectedPackage: string(booking.Package),
		Price:           booking.TotalPrice,
		UserID:          booking.UserID,
		Username:        booking.UserName,
		DayFormat:       string(booking.TimeFormat),
		BookingID:       booking.ID,
	})
	if err != nil {
		o.logger.Error("Payment captured but not persisted",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}

	o.mu.Lock()
	o.booking.PaymentStatus = model.PaymentStatusPaid
	o.state = StateDone
	o.mu.Unlock()

	o.logger.Info("Payment completed",
		zap.String("booking_id", booking.ID),
		zap.String("order_id", token),
	)

	return OutcomeCompleted, nil
}

// Cancel deletes the unpaid booking server-side. The canceled flag
// keeps a double-tap on the confirmation button from issuing a second
// delete; a failed delete lowers it again so the user can retry.
func (o *Orchestrator) Cancel(ctx context.Context) error {
	o.mu.Lock()
	if o.state == StateDone {
		o.mu.Unlock()
		return fmt.Errorf("booking already paid")
	}
	if o.canceled {
		o.mu.Unlock()
		return nil
	}
	o.canceled = true
	bookingID := o.booking.ID
	o.mu.Unlock()

	if err := o.backend.DeleteBooking(ctx, bookingID); err != nil {
		o.mu.Lock()
		o.canceled = false
		o.mu.Unlock()
		return fmt.Errorf("cancel booking: %w", err)
	}

	o.logger.Info("Booking canceled", zap.String("booking_id", bookingID))
	return nil
}

// completionParams extracts the provider's completion query parameters.
func completionParams(rawURL string) (token, payerID string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", false
	}
	q := u.Query()
	token = q.Get("token")
	payerID = q.Get("PayerID")
	if token == "" || payerID == "" {
		return "", "", false
	}
	return token, payerID, true
}

// orderIDFromApprovalURL pulls the order token out of the approval
// URL so the return redirect can be routed back to this flow.
func orderIDFromApprovalURL(approvalURL string) string {
	u, err := url.Parse(approvalURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("token")
}
