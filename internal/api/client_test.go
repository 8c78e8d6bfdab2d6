package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Freeeeeet/venuebook_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "https://bot.example", 5*time.Second, zap.NewNop())
}

func TestClient_Login(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		json.NewEncoder(w).Encode(LoginResponse{
			Token: "abc",
			User:  model.User{UserID: 7, Username: "alice"},
		})
	})

	resp, err := client.Login(context.Background(), "alice@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)
}

func TestClient_Login_NoToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(LoginResponse{})
	})

	_, err := client.Login(context.Background(), "alice@example.com", "secret1")
	require.Error(t, err)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	})

	_, err := client.Login(context.Background(), "alice@example.com", "secret1")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestClient_ErrorEnvelope_MessageField(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
	})

	_, err := client.Signup(context.Background(), SignupRequest{
		Email: "alice@example.com", Username: "alice", PhoneNumber: "0917", Password: "secret1",
	})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestClient_VenuesByCategory(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/venues/wedding", r.URL.Path)
		json.NewEncoder(w).Encode(venuesResponse{
			Success: true,
			Venues: []model.Venue{
				{ID: "v1", Name: "Garden Hall", Price: 5000},
			},
		})
	})

	venues, err := client.VenuesByCategory(context.Background(), model.CategoryWedding)

	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Garden Hall", venues[0].Name)
}

func TestClient_VenuesByCategory_EmptySuccess(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(venuesResponse{Success: true})
	})

	venues, err := client.VenuesByCategory(context.Background(), model.CategoryPool)

	require.NoError(t, err)
	assert.Empty(t, venues)
}

func TestClient_CreateBooking_IdempotencyHeader(t *testing.T) {
	var gotKey string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")

		var req CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "v1", req.VenueID)
		assert.Equal(t, "Not Paid", req.PaymentStatus)

		json.NewEncoder(w).Encode(createBookingResponse{Success: true, BookingID: "bk-1"})
	})

	id, err := client.CreateBooking(context.Background(), CreateBookingRequest{
		VenueID:       "v1",
		EventType:     "Wedding",
		UserID:        42,
		PaymentStatus: "Not Paid",
	}, "key-123")

	require.NoError(t, err)
	assert.Equal(t, "bk-1", id)
	assert.Equal(t, "key-123", gotKey)
}

func TestClient_CreateBooking_NoID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(createBookingResponse{Success: true})
	})

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{}, "key-123")
	require.Error(t, err)
}

func TestClient_CreateOrder(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/create-order", r.URL.Path)

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 11500, req.Price)
		// The backend hands these to the provider so the payer lands
		// back on the local return listener.
		assert.Equal(t, "https://bot.example/payment/return", req.ReturnURL)
		assert.Equal(t, "https://bot.example/payment/cancel", req.CancelURL)

		json.NewEncoder(w).Encode(map[string]string{
			"approvalUrl": "https://provider.example/checkout?token=ORD-1",
		})
	})

	url, err := client.CreateOrder(context.Background(), 11500)

	require.NoError(t, err)
	assert.Contains(t, url, "token=ORD-1")
}

func TestClient_DeleteBooking(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/bookings/bk-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	require.NoError(t, client.DeleteBooking(context.Background(), "bk-1"))
}

func TestClient_ContextCancellation(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.VenuesByCategory(ctx, model.CategoryParty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
