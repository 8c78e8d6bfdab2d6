package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListener_ReturnRoutesByOrderToken(t *testing.T) {
	backend := &fakeBackend{approvalURL: approvalURL}
	orch := NewOrchestrator(testBooking(), backend, zap.NewNop())

	var gotOutcome Outcome
	registry := NewRegistry()
	registry.Put(7, orch, func(outcome Outcome, err error) { gotOutcome = outcome })

	_, err := orch.Pay(context.Background())
	require.NoError(t, err)
	registry.BindOrder(7, orch.OrderID())

	l := NewListener(":0", registry, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet,
		"/payment/return?token=ORD-1&PayerID=P-9", nil)
	rec := httptest.NewRecorder()
	l.handleReturn(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment completed")
	assert.Equal(t, OutcomeCompleted, gotOutcome)
	assert.Equal(t, StateDone, orch.State())
}

// abortSensitiveBackend fails the capture when its context is already
// dead, the way a real HTTP call would.
type abortSensitiveBackend struct {
	fakeBackend
}

func (f *abortSensitiveBackend) ExecutePayment(ctx context.Context, orderID, payerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.fakeBackend.ExecutePayment(ctx, orderID, payerID)
}

func TestListener_ReturnSurvivesClosedTab(t *testing.T) {
	backend := &abortSensitiveBackend{fakeBackend{approvalURL: approvalURL}}
	orch := NewOrchestrator(testBooking(), backend, zap.NewNop())

	registry := NewRegistry()
	registry.Put(7, orch, nil)

	_, err := orch.Pay(context.Background())
	require.NoError(t, err)
	registry.BindOrder(7, orch.OrderID())

	l := NewListener(":0", registry, zap.NewNop())

	// The payer closes the tab the instant the redirect fires: the
	// request context is already canceled when the handler runs.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet,
		"/payment/return?token=ORD-1&PayerID=P-9", nil).WithContext(ctx)

	l.handleReturn(httptest.NewRecorder(), req)

	assert.Equal(t, StateDone, orch.State())
	assert.Equal(t, 1, backend.executeCalls)
}

func TestListener_ReturnUnknownOrder(t *testing.T) {
	registry := NewRegistry()
	l := NewListener(":0", registry, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet,
		"/payment/return?token=ORD-404&PayerID=P-9", nil)
	rec := httptest.NewRecorder()
	l.handleReturn(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestListener_DuplicateRedirectDoesNotNotifyTwice(t *testing.T) {
	backend := &fakeBackend{approvalURL: approvalURL}
	orch := NewOrchestrator(testBooking(), backend, zap.NewNop())

	var notifications int
	registry := NewRegistry()
	registry.Put(7, orch, func(outcome Outcome, err error) { notifications++ })

	_, err := orch.Pay(context.Background())
	require.NoError(t, err)
	registry.BindOrder(7, orch.OrderID())

	l := NewListener(":0", registry, zap.NewNop())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet,
			"/payment/return?token=ORD-1&PayerID=P-9", nil)
		l.handleReturn(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 1, notifications)
	assert.Equal(t, 1, backend.executeCalls)
}

func TestListener_CancelKeepsFlowAlive(t *testing.T) {
	backend := &fakeBackend{approvalURL: approvalURL}
	orch := NewOrchestrator(testBooking(), backend, zap.NewNop())

	registry := NewRegistry()
	registry.Put(7, orch, nil)

	_, err := orch.Pay(context.Background())
	require.NoError(t, err)
	registry.BindOrder(7, orch.OrderID())

	l := NewListener(":0", registry, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/payment/cancel?token=ORD-1", nil)
	rec := httptest.NewRecorder()
	l.handleCancel(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The payer backed out on the provider page; the chat can retry.
	assert.Equal(t, StateAwaitingApproval, orch.State())
	assert.Zero(t, backend.executeCalls)
}

func TestRegistry_PutReplacesFlow(t *testing.T) {
	backend := &fakeBackend{approvalURL: approvalURL}
	first := NewOrchestrator(testBooking(), backend, zap.NewNop())
	second := NewOrchestrator(testBooking(), backend, zap.NewNop())

	registry := NewRegistry()
	registry.Put(7, first, nil)

	_, err := first.Pay(context.Background())
	require.NoError(t, err)
	registry.BindOrder(7, first.OrderID())

	registry.Put(7, second, nil)

	// The old order token must not route anywhere anymore.
	orch, _ := registry.ByOrder("ORD-1")
	assert.Nil(t, orch)
	assert.Same(t, second, registry.ByChat(7))
}

func TestRegistry_Remove(t *testing.T) {
	backend := &fakeBackend{approvalURL: approvalURL}
	orch := NewOrchestrator(testBooking(), backend, zap.NewNop())

	registry := NewRegistry()
	registry.Put(7, orch, nil)

	_, err := orch.Pay(context.Background())
	require.NoError(t, err)
	registry.BindOrder(7, orch.OrderID())

	registry.Remove(7)

	assert.Nil(t, registry.ByChat(7))
	got, _ := registry.ByOrder("ORD-1")
	assert.Nil(t, got)
}
