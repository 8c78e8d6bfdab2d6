package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/venuebook_bot/internal/api"
	"github.com/Freeeeeet/venuebook_bot/internal/booking"
	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/Freeeeeet/venuebook_bot/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingBackend struct {
	calls     int
	lastReq   api.CreateBookingRequest
	lastKey   string
	bookingID string
	err       error
}

func (f *fakeBookingBackend) CreateBooking(ctx context.Context, req api.CreateBookingRequest, idempotencyKey string) (string, error) {
	f.calls++
	f.lastReq = req
	f.lastKey = idempotencyKey
	return f.bookingID, f.err
}

func testForm(name string) *booking.Form {
	venue := model.Venue{ID: "v1", Name: "Garden Hall", Price: 5000}
	return booking.NewForm(venue, model.CategoryWedding, name)
}

func testSession() *session.Session {
	return &session.Session{ChatID: 7, Token: "abc", UserID: 42, Username: "alice"}
}

func TestBookingService_Submit(t *testing.T) {
	backend := &fakeBookingBackend{bookingID: "bk-1"}
	svc := NewBookingService(backend, zap.NewNop())

	booked, err := svc.Submit(context.Background(), testForm("alice"), testSession())

	require.NoError(t, err)
	assert.Equal(t, "bk-1", booked.ID)
	assert.Equal(t, int64(42), booked.UserID)
	assert.Equal(t, model.PaymentStatusNotPaid, booked.PaymentStatus)
	assert.Equal(t, int64(42), backend.lastReq.UserID)
	assert.NotEmpty(t, backend.lastKey)
}

func TestBookingService_Submit_FreshKeyPerAttempt(t *testing.T) {
	backend := &fakeBookingBackend{bookingID: "bk-1"}
	svc := NewBookingService(backend, zap.NewNop())

	_, err := svc.Submit(context.Background(), testForm("alice"), testSession())
	require.NoError(t, err)
	first := backend.lastKey

	_, err = svc.Submit(context.Background(), testForm("alice"), testSession())
	require.NoError(t, err)

	assert.NotEqual(t, first, backend.lastKey)
}

func TestBookingService_Submit_EmptyNameNeverReachesBackend(t *testing.T) {
	backend := &fakeBookingBackend{bookingID: "bk-1"}
	svc := NewBookingService(backend, zap.NewNop())

	_, err := svc.Submit(context.Background(), testForm(""), testSession())

	require.ErrorIs(t, err, booking.ErrNameRequired)
	assert.Zero(t, backend.calls)
}

func TestBookingService_Submit_NotLoggedIn(t *testing.T) {
	backend := &fakeBookingBackend{}
	svc := NewBookingService(backend, zap.NewNop())

	_, err := svc.Submit(context.Background(), testForm("alice"), nil)

	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, backend.calls)
}

func TestBookingService_Submit_BackendError(t *testing.T) {
	backend := &fakeBookingBackend{err: errors.New("conflict")}
	svc := NewBookingService(backend, zap.NewNop())

	form := testForm("alice")
	_, err := svc.Submit(context.Background(), form, testSession())

	require.Error(t, err)
	// Selections survive for a retry.
	assert.Equal(t, "alice", form.AttendeeName)
	assert.Equal(t, 7000, form.TotalPrice)
}
