package payment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Listener is the HTTP endpoint the payment provider redirects the
// payer back to. It replaces the mobile app's embedded browser view:
// every hit on /payment/return is one navigation event, routed to the
// awaiting flow by the order token in its query string.
type Listener struct {
	registry *Registry
	server   *http.Server
	logger   *zap.Logger
}

func NewListener(addr string, registry *Registry, logger *zap.Logger) *Listener {
	l := &Listener{
		registry: registry,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/payment/return", l.handleReturn)
	mux.HandleFunc("/payment/cancel", l.handleCancel)

	l.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return l
}

// Start serves until the context is done.
func (l *Listener) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = l.server.Shutdown(shutdownCtx)
	}()

	l.logger.Info("Payment return listener started", zap.String("addr", l.server.Addr))

	if err := l.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("payment listener: %w", err)
	}
	return nil
}

func (l *Listener) handleReturn(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("token")

	orch, onResult := l.registry.ByOrder(orderID)
	if orch == nil {
		l.logger.Warn("Return redirect for unknown order", zap.String("order_id", orderID))
		writePage(w, "Payment session not found. Please return to Telegram.")
		return
	}

	// Detached from the request: the payer closing the tab right after
	// the redirect must not abort the capture mid-finalization.
	navCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	outcome, err := orch.HandleNavigation(navCtx, r.URL.String())

	switch outcome {
	case OutcomeCompleted:
		writePage(w, "Payment completed. You can return to Telegram.")
	case OutcomeFailed:
		l.logger.Error("Payment finalization failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		writePage(w, "Payment failed. Please return to Telegram and try again.")
	default:
		// Duplicate redirect or missing parameters; the first event
		// already drove the flow.
		writePage(w, "You can return to Telegram.")
	}

	if outcome != OutcomeIgnored && onResult != nil {
		onResult(outcome, err)
	}
}

// handleCancel serves the provider's cancel redirect: the payer backed
// out on the provider page. The flow stays in AwaitingApproval so the
// user can press Pay again or cancel the booking from the chat.
func (l *Listener) handleCancel(w http.ResponseWriter, r *http.Request) {
	l.logger.Info("Payer canceled on provider page",
		zap.String("order_id", r.URL.Query().Get("token")),
	)
	writePage(w, "Payment canceled. You can return to Telegram.")
}

func writePage(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html><html><body><p>%s</p></body></html>", text)
}
