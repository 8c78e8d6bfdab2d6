package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
)

type createOrderRequest struct {
	Price     int    `json:"price"`
	ReturnURL string `json:"returnUrl"`
	CancelURL string `json:"cancelUrl"`
}

type createOrderResponse struct {
	ApprovalURL string `json:"approvalUrl"`
	Error       string `json:"error"`
}

// CreateOrder asks the backend to create a provider order for the
// given total and returns the approval URL the payer must visit. The
// redirect URLs point the provider back at the local return listener.
func (c *Client) CreateOrder(ctx context.Context, price int) (string, error) {
	req := createOrderRequest{
		Price:     price,
		ReturnURL: c.callbackBaseURL + "/payment/return",
		CancelURL: c.callbackBaseURL + "/payment/cancel",
	}

	var out createOrderResponse
	if err := c.post(ctx, "/api/create-order", req, &out); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	if out.ApprovalURL == "" {
		return "", fmt.Errorf("create order: %s", fallback(out.Error, "approval URL not found"))
	}
	return out.ApprovalURL, nil
}

// ExecutePayment captures an approved provider order.
func (c *Client) ExecutePayment(ctx context.Context, orderID, payerID string) error {
	body := map[string]string{"orderID": orderID, "payerID": payerID}
	if err := c.post(ctx, "/api/execute-payment", body, nil); err != nil {
		return fmt.Errorf("execute payment: %w", err)
	}
	return nil
}

// PaymentSuccessRequest persists the paid booking's details.
type PaymentSuccessRequest struct {
	VenueName       string `json:"venueName"`
	Date            string `json:"date"`
	EventType       string `json:"eventType"`
	SelectedPackage string `json:"selectedPackage"`
	Price           int    `json:"price"`
	UserID          int64  `json:"userID"`
	Username        string `json:"username"`
	DayFormat       string `json:"dayFormat"`
	BookingID       string `json:"bookingID"`
}

// PersistPaymentSuccess records a captured payment server-side. Only
// called after ExecutePayment succeeded.
func (c *Client) PersistPaymentSuccess(ctx context.Context, req PaymentSuccessRequest) error {
	var out statusResponse
	if err := c.post(ctx, "/api/payment/success", req, &out); err != nil {
		return fmt.Errorf("persist payment success: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("persist payment success: %s", fallback(out.Message, "backend reported failure"))
	}
	return nil
}

type paymentsResponse struct {
	Payments []model.Payment `json:"payments"`
}

// UserPayments fetches the payment history of one account.
func (c *Client) UserPayments(ctx context.Context, userID int64) ([]model.Payment, error) {
	var out paymentsResponse
	if err := c.get(ctx, "/api/payments/user?userID="+strconv.FormatInt(userID, 10), &out); err != nil {
		return nil, fmt.Errorf("user payments: %w", err)
	}
	return out.Payments, nil
}
